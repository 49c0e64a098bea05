package interpreter

import (
	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

// evalCall implements spec §4.6: receiver-style calls are a unary receiver
// plus args; lazy overloads see unevaluated argument nodes, eager overloads
// see fully evaluated arguments. has() and @not_strictly_false are
// AST-level constructs dispatched here rather than through the function
// registry, per spec §4.6's final paragraph.
func (it *Interpreter) evalCall(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	switch node.Function {
	case "has":
		return it.evalHas(node, ctx, st)
	case celast.NotStrictlyFalse:
		if len(node.Args) != 1 {
			return value.NewErrf(value.InvalidArgument, "@not_strictly_false takes exactly one argument")
		}
		v := it.eval(node.Args[0], ctx, st)
		return value.Bool(notStrictlyFalse(v))
	}

	// Lazy (call-site-laziness) overloads get first refusal: they decide
	// for themselves which arguments to evaluate.
	eval := func(n *celast.Expr, c *celcontext.Context) value.Value {
		return it.eval(n, c, st)
	}
	if got, ok := it.dispatcher.DispatchLazy(node.Function, eval, ctx, node.Args); ok {
		return got
	}

	// Eager path: evaluate the receiver (if any) and all arguments, then
	// dispatch against the Context's registered overload sets.
	args := make([]value.Value, 0, len(node.Args)+1)
	if node.Target != nil {
		t := it.eval(node.Target, ctx, st)
		if value.IsError(t) {
			return t
		}
		args = append(args, t)
	}
	for _, a := range node.Args {
		v := it.eval(a, ctx, st)
		if value.IsError(v) {
			return v
		}
		args = append(args, v)
	}

	if got, ok := ctx.Dispatch(node.Function, args); ok {
		return got
	}
	if len(ctx.ResolveFunction(node.Function)) > 0 {
		return value.NewErrf(value.NoSuchOverload, "no matching overload for %s(%s)", node.Function, argTypeNames(args))
	}
	return value.NewErrf(value.NoSuchFunction, "no such function: %s", node.Function)
}

func argTypeNames(args []value.Value) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a.TypeName()
	}
	return out
}
