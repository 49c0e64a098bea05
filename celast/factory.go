package celast

import "github.com/cel-core/cel/value"

// Factory functions below mirror common/ast/factory.go's builder style:
// one constructor per node kind, each taking the stable node id first. They
// exist so tests (and the example driver in cmd/celeval) can build trees
// without a parser, matching spec §6.1 ("The parser delivers an AST node
// tree... any parser producing that shape is acceptable").

func NewLiteral(id int64, v value.Value) *Expr {
	return &Expr{ID: id, Kind: KindLiteral, Literal: v}
}

func NewIdent(id int64, name string) *Expr {
	return &Expr{ID: id, Kind: KindIdent, Ident: name}
}

func NewSelect(id int64, operand *Expr, field string, optional bool) *Expr {
	return &Expr{ID: id, Kind: KindSelect, Operand: operand, Field: field, Optional: optional}
}

func NewIndex(id int64, operand, key *Expr, optional bool) *Expr {
	return &Expr{ID: id, Kind: KindIndex, Operand: operand, IndexKey: key, Optional: optional}
}

func NewCall(id int64, target *Expr, function string, args ...*Expr) *Expr {
	return &Expr{ID: id, Kind: KindCall, Target: target, Function: function, Args: args}
}

func NewList(id int64, elements []*Expr, optionalElem []bool) *Expr {
	return &Expr{ID: id, Kind: KindList, Elements: elements, OptionalElem: optionalElem}
}

func NewMap(id int64, keys, values []*Expr, optionalEntry []bool) *Expr {
	return &Expr{ID: id, Kind: KindMap, MapKeys: keys, MapValues: values, OptionalEntry: optionalEntry}
}

// NewComprehension builds the general comprehension node every `all`,
// `exists`, `exists_one`, `map` and `filter` macro desugars into (spec
// §4.5). The Desugar* helpers give accumVar the reserved internal prefix
// (see ReservedPrefix); iterVar is the caller's own name, unprefixed, since
// the predicate refers to it. Hand-built ASTs may use any names.
func NewComprehension(id int64, iterRange *Expr, iterVar string, accumVar string, accumInit, loopCond, loopStep, result *Expr) *Expr {
	return &Expr{
		ID:        id,
		Kind:      KindComprehension,
		IterRange: iterRange,
		IterVar:   iterVar,
		AccumVar:  accumVar,
		AccumInit: accumInit,
		LoopCond:  loopCond,
		LoopStep:  loopStep,
		Result:    result,
	}
}

func NewConditional(id int64, test, then, els *Expr) *Expr {
	return &Expr{ID: id, Kind: KindConditional, Test: test, Then: then, Else: els}
}

func NewLogical(id int64, op LogicalOp, lhs, rhs *Expr) *Expr {
	return &Expr{ID: id, Kind: KindLogical, LogicalOp: op, Lhs: lhs, Rhs: rhs}
}

func NewUnary(id int64, op UnaryOp, operand *Expr) *Expr {
	return &Expr{ID: id, Kind: KindUnary, UnaryOp: op, Operand1: operand}
}

// ReservedPrefix is prepended to comprehension accumulator/iteration
// variable names generated by macro desugaring, making them uncollidable
// with any identifier a user could write in CEL source (spec §3.5),
// grounded on the teacher's "__result__"-style internal names.
const ReservedPrefix = "@c:"

// IsReservedIdent reports whether name carries the reserved comprehension
// prefix. Nothing in this module calls it; has() and error messages do not
// filter reserved names.
func IsReservedIdent(name string) bool {
	return len(name) >= len(ReservedPrefix) && name[:len(ReservedPrefix)] == ReservedPrefix
}
