package interpreter

import (
	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

// evalComprehension implements the Comprehension engine (spec §4.5): the
// general fold every `all`/`exists`/`exists_one`/`map`/`filter` desugars
// into (see celast.DesugarAll and friends), plus hand-built comprehension
// nodes. Grounded on interpreter/interpreter.go's fold Interpretable in the
// teacher.
//
// The accumulator is stored verbatim every iteration, including when a step
// evaluates to an *Err: CEL treats errors as ordinary values (spec §7), so
// an error sitting in the accumulator is absorbed exactly the way the
// Logical node absorbs errors on either operand (evalLogical in eval.go) once a
// later iteration's loop_cond/loop_step resolves concretely — no separate
// bookkeeping is needed here beyond "accu = whatever step produced."
func (it *Interpreter) evalComprehension(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	rangeVal := it.eval(node.IterRange, ctx, st)
	if value.IsError(rangeVal) {
		return rangeVal
	}
	iterable, ok := rangeVal.(value.Iterable)
	if !ok {
		return value.NewErrf(value.NoSuchOverload, "comprehension range must be list or map, got %s", rangeVal.TypeName())
	}

	accu := it.eval(node.AccumInit, ctx, st)
	if value.IsError(accu) {
		return accu
	}

	// One child scope is reused across iterations (spec §5: "O(1) with
	// parent-pointer lookup"); rebinding iter_var/accum_var each pass is
	// equivalent to spinning up a fresh scope per iteration since neither
	// binding is ever captured by a closure that outlives the iteration.
	loopCtx := ctx.NewInnerScope()
	loopCtx.AddVariable(node.AccumVar, accu)

	iter := iterable.Iterator()
	for iter.HasNext() {
		elem := iter.Next()
		loopCtx.AddVariable(node.IterVar, elem)

		cond := it.eval(node.LoopCond, loopCtx, st)
		if b, isBool := cond.(value.Bool); isBool && !bool(b) {
			break // loop_cond concretely false: stop, per spec §4.5.
		}

		accu = it.eval(node.LoopStep, loopCtx, st)
		loopCtx.AddVariable(node.AccumVar, accu)
	}

	return it.eval(node.Result, loopCtx, st)
}
