package functions

import (
	"testing"

	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

func TestLazyOverloadSeesUnevaluatedArgs(t *testing.T) {
	d := NewDispatcher()
	var evaluatedArgs int
	eval := func(node *celast.Expr, ctx *celcontext.Context) value.Value {
		evaluatedArgs++
		return node.Literal
	}
	d.AddLazy("myAnd", &LazyOverload{
		Arity: 2,
		Call: func(eval Evaluator, ctx *celcontext.Context, args []*celast.Expr) value.Value {
			lhs := eval(args[0], ctx)
			if b, ok := lhs.(value.Bool); ok && !bool(b) {
				return value.False // short circuits: never evaluates args[1]
			}
			return eval(args[1], ctx)
		},
	})
	ctx := celcontext.NewContext(64)
	args := []*celast.Expr{celast.NewLiteral(1, value.False), celast.NewLiteral(2, value.True)}
	got, ok := d.DispatchLazy("myAnd", eval, ctx, args)
	if !ok || !got.Equal(value.False) {
		t.Fatalf("expected False from short-circuited lazy overload, got %#v", got)
	}
	if evaluatedArgs != 1 {
		t.Fatalf("expected exactly one argument evaluated, got %d", evaluatedArgs)
	}
}

func TestDispatchMissingFunctionReportsNotFound(t *testing.T) {
	ctx := celcontext.NewContext(64)
	if _, ok := Dispatch(ctx, "nope", nil); ok {
		t.Fatal("expected no overload to be found")
	}
}
