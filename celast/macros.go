package celast

import "github.com/cel-core/cel/value"

// Macro desugaring: `all`, `exists`, `exists_one`, `map` and `filter` are
// parser macros that rewrite into the general Comprehension node (spec
// §4.5). A parser is out of this module's scope, but the desugaring rule
// itself is core evaluator behaviour (it fixes what loop_cond/loop_step/
// result must be for each macro), so it lives here rather than in an
// external, unspecified grammar. Grounded on interpreter/interpreter.go's
// fold Interpretable and ext/comprehensions.go's macro expansions in the
// teacher.
//
// NotStrictlyFalse is the name of the internal function used as loop_cond
// for all()/exists() so that a non-bool-or-true loop_cond error is absorbed
// rather than aborting the comprehension early (spec §4.3 "@not_strictly_false").
const NotStrictlyFalse = "@not_strictly_false"

func notStrictlyFalse(id int64, e *Expr) *Expr {
	return NewCall(id, nil, NotStrictlyFalse, e)
}

// idGen hands out sequential synthetic node ids for macro-generated
// sub-expressions, starting at the comprehension's own id plus one. It does
// not look at the ids of the caller's range/predicate nodes, so a generated
// id may coincide with one of them. Ids are for diagnostics only per spec
// §3.5, so nothing in this module depends on them being unique.
type idGen struct{ next int64 }

func newIDGen(seed int64) *idGen {
	return &idGen{next: seed}
}

func (g *idGen) id() int64 {
	g.next++
	return g.next
}

func accumVar(g *idGen) string { return ReservedPrefix + "accu" }
func iterVarName(g *idGen) string { return ReservedPrefix + "iter" }

// DesugarAll builds the comprehension for `range.all(iterVar, pred)`:
// true unless some element makes pred false (or errors, once no later
// element makes the whole thing false-short-circuit).
func DesugarAll(id int64, rang *Expr, iterVar string, pred *Expr) *Expr {
	g := newIDGen(id)
	accu := accumVar(g)
	return NewComprehension(id, rang, iterVar, accu,
		NewLiteral(g.id(), value.True),
		notStrictlyFalse(g.id(), NewIdent(g.id(), accu)),
		NewLogical(g.id(), LogicalAnd, NewIdent(g.id(), accu), pred),
		NewIdent(g.id(), accu),
	)
}

// DesugarExists builds the comprehension for `range.exists(iterVar, pred)`:
// false unless some element makes pred true.
func DesugarExists(id int64, rang *Expr, iterVar string, pred *Expr) *Expr {
	g := newIDGen(id)
	accu := accumVar(g)
	return NewComprehension(id, rang, iterVar, accu,
		NewLiteral(g.id(), value.False),
		notStrictlyFalse(g.id(), NewUnary(g.id(), UnaryNot, NewIdent(g.id(), accu))),
		NewLogical(g.id(), LogicalOr, NewIdent(g.id(), accu), pred),
		NewIdent(g.id(), accu),
	)
}

// DesugarExistsOne builds the comprehension for
// `range.exists_one(iterVar, pred)`: true iff exactly one element matches.
func DesugarExistsOne(id int64, rang *Expr, iterVar string, pred *Expr) *Expr {
	g := newIDGen(id)
	accu := accumVar(g)
	one := NewLiteral(g.id(), value.Int(1))
	zero := NewLiteral(g.id(), value.Int(0))
	step := NewConditional(g.id(), pred, NewCall(g.id(), nil, "_+_", NewIdent(g.id(), accu), one), NewIdent(g.id(), accu))
	return NewComprehension(id, rang, iterVar, accu,
		zero,
		NewLiteral(g.id(), value.True), // exists_one always scans the whole range
		step,
		NewCall(g.id(), nil, "_==_", NewIdent(g.id(), accu), one),
	)
}

// DesugarMap builds the comprehension for `range.map(iterVar, transform)`:
// a new list of transform(iterVar) for every element.
func DesugarMap(id int64, rang *Expr, iterVar string, transform *Expr) *Expr {
	g := newIDGen(id)
	accu := accumVar(g)
	step := NewCall(g.id(), nil, "_+_", NewIdent(g.id(), accu), NewList(g.id(), []*Expr{transform}, nil))
	return NewComprehension(id, rang, iterVar, accu,
		NewList(g.id(), nil, nil),
		NewLiteral(g.id(), value.True),
		step,
		NewIdent(g.id(), accu),
	)
}

// DesugarFilter builds the comprehension for `range.filter(iterVar, pred)`:
// a new list of every element for which pred is true.
func DesugarFilter(id int64, rang *Expr, iterVar string, pred *Expr) *Expr {
	g := newIDGen(id)
	accu := accumVar(g)
	appended := NewCall(g.id(), nil, "_+_", NewIdent(g.id(), accu), NewList(g.id(), []*Expr{NewIdent(g.id(), iterVar)}, nil))
	step := NewConditional(g.id(), pred, appended, NewIdent(g.id(), accu))
	return NewComprehension(id, rang, iterVar, accu,
		NewList(g.id(), nil, nil),
		NewLiteral(g.id(), value.True),
		step,
		NewIdent(g.id(), accu),
	)
}
