// Package celcontext implements the nestable variable+function scope stack
// the interpreter resolves identifiers and function overloads against,
// grounded on interpreter/activation.go's Activation/HierarchicalActivation
// parent-chain idiom, generalized to also carry function overload sets
// (the teacher splits that responsibility into a separate package-level
// Dispatcher; this spec's Context owns both per §3.6/§4.2).
package celcontext

import "github.com/cel-core/cel/value"

// Function is a single host overload registered under a name. See
// interpreter/functions for the richer calling-convention adapter; Context
// itself only needs to store and look these up.
type Function struct {
	// ArgTypes lists the Kind each positional argument must have for this
	// overload to accept a call; an empty slice means "accepts any arity
	// and any types" (used for variadic builtins like max/min).
	ArgTypes []value.Kind
	// Variadic marks overloads that accept ArgTypes[0] repeated any number
	// of times (e.g. max(...)), rather than requiring exact arity.
	Variadic bool
	Call     func(args []value.Value) value.Value
}

func (f *Function) accepts(args []value.Value) bool {
	if len(f.ArgTypes) == 0 {
		return true
	}
	if f.Variadic {
		for _, a := range args {
			if a.Kind() != f.ArgTypes[0] {
				return false
			}
		}
		return true
	}
	if len(args) != len(f.ArgTypes) {
		return false
	}
	for i, a := range args {
		if a.Kind() != f.ArgTypes[i] {
			return false
		}
	}
	return true
}

// DeferredValue lazily supplies a variable binding, evaluated at most once
// per resolve call (not memoized across calls, matching
// interpreter/activation.go's "func() interface{}" lazy binding idiom).
type DeferredValue func() value.Value

type binding struct {
	value    value.Value
	deferred DeferredValue
}

// Context is a single scope frame plus a pointer to its parent; a nil
// parent marks the root. Per spec §4.2, a Context is single-owner at
// evaluation time: concurrent reads are forbidden unless the Context is
// immutable after construction and not mutated during evaluation.
type Context struct {
	parent    *Context
	vars      map[string]binding
	functions map[string][]*Function
	// maxRecursionDepth is only meaningful on the root Context; child scopes
	// inherit it via MaxRecursionDepth, which walks to the root once.
	maxRecursionDepth int
}

// NewContext returns an empty root Context with the given recursion depth
// bound (spec §4.2 "max_recursion_depth: a configured positive integer").
func NewContext(maxRecursionDepth int) *Context {
	return &Context{
		vars:              make(map[string]binding),
		functions:         make(map[string][]*Function),
		maxRecursionDepth: maxRecursionDepth,
	}
}

// AddVariable binds name to v in the current scope.
func (c *Context) AddVariable(name string, v value.Value) {
	c.vars[name] = binding{value: v}
}

// AddVariableFunc binds name to a deferred value producer, evaluated lazily
// on every resolve.
func (c *Context) AddVariableFunc(name string, fn DeferredValue) {
	c.vars[name] = binding{deferred: fn}
}

// AddFunction registers a host function overload under name. Multiple
// registrations under the same name accumulate into an overload set
// searched in registration order at call time (spec §4.6).
func (c *Context) AddFunction(name string, fn *Function) {
	c.functions[name] = append(c.functions[name], fn)
}

// Resolve looks up name from innermost scope to outermost, per spec §3.6:
// "the first match wins."
func (c *Context) Resolve(name string) (value.Value, bool) {
	for s := c; s != nil; s = s.parent {
		if b, ok := s.vars[name]; ok {
			if b.deferred != nil {
				return b.deferred(), true
			}
			return b.value, true
		}
	}
	return nil, false
}

// ResolveFunction returns the overload set registered under name across the
// whole scope chain, innermost-first, matching variable shadowing rules
// applied to functions too.
func (c *Context) ResolveFunction(name string) []*Function {
	var all []*Function
	for s := c; s != nil; s = s.parent {
		all = append(all, s.functions[name]...)
	}
	return all
}

// Dispatch finds the first overload under name whose ArgTypes accept args
// and invokes it, per spec §4.6's registration-order-first-match rule.
func (c *Context) Dispatch(name string, args []value.Value) (value.Value, bool) {
	for _, fn := range c.ResolveFunction(name) {
		if fn.accepts(args) {
			return fn.Call(args), true
		}
	}
	return nil, false
}

// FindOverload reports whether name has at least one overload registered
// anywhere in the scope chain and returns the first one (registration
// order, innermost scope first), for diagnostics/testing callers that want
// to ask "is this function bound at all" without supplying a candidate
// argument list the way Dispatch requires.
func (c *Context) FindOverload(name string) (*Function, bool) {
	overloads := c.ResolveFunction(name)
	if len(overloads) == 0 {
		return nil, false
	}
	return overloads[0], true
}

// NewInnerScope creates a child scope whose lifetime is bounded by the
// caller (spec §4.2); it shadows but never mutates the parent.
func (c *Context) NewInnerScope() *Context {
	return &Context{
		parent:    c,
		vars:      make(map[string]binding),
		functions: make(map[string][]*Function),
	}
}

// MaxRecursionDepth returns the configured bound, walking to the root scope
// (only the root carries a non-zero value; see NewContext).
func (c *Context) MaxRecursionDepth() int {
	for s := c; s != nil; s = s.parent {
		if s.parent == nil {
			return s.maxRecursionDepth
		}
	}
	return 0
}
