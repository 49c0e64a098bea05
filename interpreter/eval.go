// Package interpreter implements the Interpreter (spec §4.3-§4.4) and
// Comprehension engine (spec §4.5) components: a recursive tree-walking
// evaluator over celast's identifier-annotated AST, driven against a
// celcontext.Context. Grounded on interpreter/interpreter.go and
// interpreter/planner.go in the teacher, collapsed from their two-phase
// plan-then-run design (the teacher compiles an Interpretable tree once and
// runs it many times) into direct recursive evaluation, since this module
// does not re-specify a separate planning/optimization pass.
package interpreter

import (
	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter/functions"
	"github.com/cel-core/cel/value"
)

// Interpreter evaluates a celast.Expr tree against a celcontext.Context. It
// is safe to share across goroutines (it carries no mutable state of its
// own; see spec §5), provided each evaluation uses a distinct Context.
type Interpreter struct {
	dispatcher *functions.Dispatcher
	features   FeatureSet
}

// FeatureSet gates optional standard-library surface per spec §6.3. The
// gating itself happens in the standard library: stdlib.Register leaves the
// time built-ins unregistered, and matches()/toJson() return NoSuchOverload,
// when the matching flag is off. The interpreter only stores the set and
// reports it through Features; evaluation does not read it.
type FeatureSet struct {
	Regex bool
	Time  bool
	JSON  bool
}

// AllFeatures enables every optional feature; used by the example driver
// and by default in tests that don't care about gating.
func AllFeatures() FeatureSet {
	return FeatureSet{Regex: true, Time: true, JSON: true}
}

// New returns an Interpreter wired to dispatcher (for lazy host overloads)
// with the given feature gates.
func New(dispatcher *functions.Dispatcher, features FeatureSet) *Interpreter {
	if dispatcher == nil {
		dispatcher = functions.NewDispatcher()
	}
	return &Interpreter{dispatcher: dispatcher, features: features}
}

// Features returns the interpreter's configured feature gates.
func (it *Interpreter) Features() FeatureSet { return it.features }

// evalState threads the recursion-depth counter through Eval without
// exposing it in the public signature; spec §4.2 "Depth counts language
// constructs (expression nodes pushed on the evaluator stack), not
// implementation recursion" — each call to eval increments depth by one
// node, regardless of how many Go stack frames that node's evaluation uses.
type evalState struct {
	depth int
}

// Eval is the public entry point: `execute(ast, context)` from spec §2.
func (it *Interpreter) Eval(node *celast.Expr, ctx *celcontext.Context) value.Value {
	return it.eval(node, ctx, &evalState{})
}

func (it *Interpreter) eval(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	st.depth++
	defer func() { st.depth-- }()
	if max := ctx.MaxRecursionDepth(); max > 0 && st.depth > max {
		return value.NewErrf(value.MaxRecursionDepth, "max recursion depth %d exceeded", max).WithNodeID(node.ID)
	}

	var result value.Value
	switch node.Kind {
	case celast.KindLiteral:
		result = node.Literal

	case celast.KindIdent:
		result = it.evalIdent(node, ctx)

	case celast.KindUnary:
		result = it.evalUnary(node, ctx, st)

	case celast.KindLogical:
		result = it.evalLogical(node, ctx, st)

	case celast.KindConditional:
		result = it.evalConditional(node, ctx, st)

	case celast.KindSelect:
		result = it.evalSelect(node, ctx, st)

	case celast.KindIndex:
		result = it.evalIndex(node, ctx, st)

	case celast.KindList:
		result = it.evalList(node, ctx, st)

	case celast.KindMap:
		result = it.evalMap(node, ctx, st)

	case celast.KindCall:
		result = it.evalCall(node, ctx, st)

	case celast.KindComprehension:
		result = it.evalComprehension(node, ctx, st)

	default:
		result = value.NewErrf(value.InvalidArgument, "unknown AST node kind %v", node.Kind)
	}

	if e, ok := value.AsError(result); ok {
		return e.WithNodeID(node.ID)
	}
	return result
}

func (it *Interpreter) evalIdent(node *celast.Expr, ctx *celcontext.Context) value.Value {
	v, ok := ctx.Resolve(node.Ident)
	if !ok {
		return value.NewErrf(value.NoSuchVariable, "no such variable: %s", node.Ident)
	}
	return v
}

// evalUnary implements spec §4.3 Unary(Not, e) and Unary(Neg, e). The
// internal @not_strictly_false builtin used by comprehension loop
// conditions is a Call node and is handled in evalCall (call.go).
func (it *Interpreter) evalUnary(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	operand := it.eval(node.Operand1, ctx, st)
	switch node.UnaryOp {
	case celast.UnaryNot:
		b, ok := operand.(value.Bool)
		if !ok {
			if value.IsError(operand) {
				return operand
			}
			return value.NewErrf(value.NoSuchOverload, "unsupported overload: !%s", operand.TypeName())
		}
		return !b
	case celast.UnaryNeg:
		n, ok := operand.(value.Negator)
		if !ok {
			if value.IsError(operand) {
				return operand
			}
			return value.NewErrf(value.NoSuchOverload, "unsupported overload: -%s", operand.TypeName())
		}
		return n.Negate()
	}
	return value.NewErrf(value.InvalidArgument, "unknown unary operator")
}

// notStrictlyFalse returns true if v is not a Bool, or is Bool(true);
// false only when v is exactly Bool(false). This absorbs errors/non-bool
// values in comprehension loop conditions (spec §4.3, §4.5) the same way
// the && / || operators absorb them below.
func notStrictlyFalse(v value.Value) bool {
	b, ok := v.(value.Bool)
	return !ok || bool(b)
}

// evalLogical implements short-circuit And/Or with error absorption, spec
// §4.3: "If l errors and r evaluates to false, result is false (error
// absorbed)... Symmetric rule applies to Or: a true on either side wins
// even if the other errors." Both sides are checked for their *own*
// short-circuit value before checking for errors, so that e.g. `E && false`
// and `false && E` both yield false without ever surfacing E, regardless of
// which operand errors.
func (it *Interpreter) evalLogical(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	lhs := it.eval(node.Lhs, ctx, st)
	if node.LogicalOp == celast.LogicalAnd {
		if b, ok := lhs.(value.Bool); ok && !bool(b) {
			return value.False // `false && r`: r never evaluated.
		}
		rhs := it.eval(node.Rhs, ctx, st)
		if b, ok := rhs.(value.Bool); ok && !bool(b) {
			return value.False // `l && false`: absorbs an error (or anything) in l.
		}
		return combineLogical(lhs, rhs, "&&")
	}
	// LogicalOr
	if b, ok := lhs.(value.Bool); ok && bool(b) {
		return value.True // `true || r`: r never evaluated.
	}
	rhs := it.eval(node.Rhs, ctx, st)
	if b, ok := rhs.(value.Bool); ok && bool(b) {
		return value.True // `l || true`: absorbs an error (or anything) in l.
	}
	return combineLogical(lhs, rhs, "||")
}

// combineLogical is reached only once neither operand resolved the whole
// expression on its own (no concrete false for &&, no concrete true for
// ||): here an error on either side propagates, and anything else that
// isn't Bool/Bool is a type error.
func combineLogical(lhs, rhs value.Value, op string) value.Value {
	if value.IsError(lhs) {
		return lhs
	}
	if value.IsError(rhs) {
		return rhs
	}
	lb, lok := lhs.(value.Bool)
	rb, rok := rhs.(value.Bool)
	if !lok || !rok {
		return value.NewErrf(value.NoSuchOverload, "unsupported overload: %s %s %s", lhs.TypeName(), op, rhs.TypeName())
	}
	if op == "&&" {
		return lb && rb
	}
	return lb || rb
}

func (it *Interpreter) evalConditional(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	test := it.eval(node.Test, ctx, st)
	b, ok := test.(value.Bool)
	if !ok {
		if value.IsError(test) {
			return test
		}
		return value.NewErrf(value.NoSuchOverload, "unsupported overload: conditional(%s)", test.TypeName())
	}
	if bool(b) {
		return it.eval(node.Then, ctx, st)
	}
	return it.eval(node.Else, ctx, st)
}

func (it *Interpreter) evalList(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	elems := make([]value.Value, 0, len(node.Elements))
	for i, e := range node.Elements {
		v := it.eval(e, ctx, st)
		if value.IsError(v) {
			return v
		}
		if node.OptionalElem != nil && i < len(node.OptionalElem) && node.OptionalElem[i] {
			opt, ok := v.(value.Optional)
			if !ok {
				return value.NewErrf(value.NoSuchOverload, "optional list element must be an optional_type, got %s", v.TypeName())
			}
			if !bool(opt.HasValue()) {
				continue // elided, per spec §4.4.5
			}
			v = opt.Value_()
		}
		elems = append(elems, v)
	}
	return value.NewList(elems)
}

func (it *Interpreter) evalMap(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	keys := make([]value.Value, 0, len(node.MapKeys))
	values := make([]value.Value, 0, len(node.MapValues))
	for i := range node.MapKeys {
		k := it.eval(node.MapKeys[i], ctx, st)
		if value.IsError(k) {
			return k
		}
		v := it.eval(node.MapValues[i], ctx, st)
		if value.IsError(v) {
			return v
		}
		if node.OptionalEntry != nil && i < len(node.OptionalEntry) && node.OptionalEntry[i] {
			// An optional map entry may mark either the key or the value as
			// optional; spec §4.4.5 says an entry whose key OR value is
			// none is elided. We treat the value position as the carrier of
			// optionality (the common case, `{k: ?v}`).
			opt, ok := v.(value.Optional)
			if !ok {
				return value.NewErrf(value.NoSuchOverload, "optional map entry must be an optional_type, got %s", v.TypeName())
			}
			if !bool(opt.HasValue()) {
				continue
			}
			v = opt.Value_()
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	m, err := value.NewMap(keys, values)
	if err != nil {
		return err
	}
	return m
}
