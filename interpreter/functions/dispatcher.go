// Package functions implements the Function Dispatcher component (spec
// §4.6): overload resolution and the lazy-argument call-site bridge host
// functions use to preserve short-circuit-style absorption. Eager overloads
// match on the exact Kind of each argument (celcontext.Function.ArgTypes);
// no argument type adaptation is done, so e.g. an int parameter does not
// accept a uint argument. Grounded on interpreter/dispatcher.go's overload-map-by-
// function-and-arity idiom in the teacher.
package functions

import (
	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

// Evaluator is the minimal surface of the interpreter a lazy host function
// needs: the ability to evaluate one argument AST node under a given
// Context. Passing this instead of a concrete *interpreter.Interpreter
// keeps this package free of an import cycle on interpreter (which itself
// depends on functions for dispatch).
type Evaluator func(node *celast.Expr, ctx *celcontext.Context) value.Value

// LazyOverload is a host function registered to see unevaluated argument
// expressions plus an Evaluator handle, rather than pre-evaluated values
// (spec §4.6, last paragraph). This is the mechanism a host uses to
// implement its own short-circuiting n-ary function.
type LazyOverload struct {
	Arity int
	Call  func(eval Evaluator, ctx *celcontext.Context, args []*celast.Expr) value.Value
}

// Dispatcher resolves a call site (function name + evaluated args, or
// function name + unevaluated arg nodes for lazy overloads) against a
// Context's registered overload sets.
type Dispatcher struct {
	lazy map[string][]*LazyOverload
}

// NewDispatcher returns an empty lazy-overload registry; eager overloads
// live directly on celcontext.Context (see celcontext.Function), since the
// common case of a function seeing already-evaluated arguments needs no
// extra bridge.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{lazy: make(map[string][]*LazyOverload)}
}

// AddLazy registers a lazy overload under name.
func (d *Dispatcher) AddLazy(name string, o *LazyOverload) {
	d.lazy[name] = append(d.lazy[name], o)
}

// DispatchLazy searches the registered lazy overloads under name in
// registration order for one matching arity, and invokes it if found.
func (d *Dispatcher) DispatchLazy(name string, eval Evaluator, ctx *celcontext.Context, args []*celast.Expr) (value.Value, bool) {
	for _, o := range d.lazy[name] {
		if o.Arity == len(args) {
			return o.Call(eval, ctx, args), true
		}
	}
	return nil, false
}

// Dispatch resolves an eager call (all arguments already evaluated) against
// ctx's registered overload sets, per spec §4.6: "a registered overload set
// is searched in registration order; the first overload whose parameter
// types accept the supplied arguments is invoked."
func Dispatch(ctx *celcontext.Context, name string, args []value.Value) (value.Value, bool) {
	return ctx.Dispatch(name, args)
}
