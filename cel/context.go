package cel

import "github.com/cel-core/cel/celcontext"

// Context is a type alias for celcontext.Context so callers of this
// package's public surface never need to import celcontext directly for the
// common case (spec §6.2: `Context::default()`, `add_variable`,
// `add_function`, `new_inner_scope`, `max_recursion_depth`, all of which
// Context already implements).
type Context = celcontext.Context

// NewContext is a convenience wrapper equivalent to
// celcontext.NewContext(0): a root Context with no recursion bound, for
// callers that don't need an Env's feature gating or standard library and
// just want to evaluate against hand-registered functions/variables.
func NewContext() *Context {
	return celcontext.NewContext(0)
}
