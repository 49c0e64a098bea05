// Package celast defines the identifier-annotated expression tree the
// interpreter consumes, grounded on common/ast/expr.go, common/ast/call.go,
// common/ast/select.go, common/ast/list.go and common/ast/comprehension.go
// in the teacher, generalized away from their exprpb/checked-AST coupling
// (parsing and type-checking are out of scope; see spec.md §1).
//
// An external parser (not part of this module) is expected to produce trees
// of these node types; this package also exposes factory functions so tests
// and the cmd/celeval example driver can build trees directly without a
// parser, mirroring how the teacher's own interpreter tests construct ASTs.
package celast

import "github.com/cel-core/cel/value"

// ExprKind discriminates the node variants named in spec §3.5.
type ExprKind int

const (
	KindLiteral ExprKind = iota
	KindIdent
	KindSelect
	KindIndex
	KindCall
	KindList
	KindMap
	KindComprehension
	KindConditional
	KindLogical
	KindUnary
)

// LogicalOp distinguishes && from ||.
type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)

// UnaryOp distinguishes unary negation from logical not.
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
)

// Expr is a single AST node. Every node carries a stable ID assigned at
// parse time (spec §3.5): "the evaluator uses it for debug/trace but never
// for semantic routing." The interpreter switches on Kind, never on the
// concrete Go type, so adding a node variant only touches this package and
// the one switch in interpreter/eval.go.
type Expr struct {
	ID   int64
	Kind ExprKind

	// Populated depending on Kind; exactly the fields relevant to Kind are
	// meaningful, following the teacher's tagged-union-via-struct idiom in
	// common/ast/expr.go.
	Literal value.Value // KindLiteral

	Ident string // KindIdent

	// KindSelect / KindIndex
	Operand  *Expr
	Field    string // KindSelect
	IndexKey *Expr  // KindIndex
	Optional bool   // e.?f / e[?k]

	// KindCall
	Target   *Expr // receiver-style x.f(args); nil for free functions
	Function string
	Args     []*Expr

	// KindList
	Elements     []*Expr
	OptionalElem []bool // parallel to Elements; true marks `?e` list entries

	// KindMap
	MapKeys       []*Expr
	MapValues     []*Expr
	OptionalEntry []bool // parallel to MapKeys/MapValues

	// KindComprehension
	IterRange *Expr
	IterVar   string
	AccumVar  string
	AccumInit *Expr
	LoopCond  *Expr
	LoopStep  *Expr
	Result    *Expr

	// KindConditional
	Test *Expr
	Then *Expr
	Else *Expr

	// KindLogical
	LogicalOp  LogicalOp
	Lhs        *Expr
	Rhs        *Expr

	// KindUnary
	UnaryOp  UnaryOp
	Operand1 *Expr
}
