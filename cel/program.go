package cel

import (
	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

// Program is an evaluable view of an already-built AST (spec §6.2:
// `Program.execute(&Context) → Value | ExecutionError`), grounded on the
// teacher's cel.Program/prog pair in cel/program.go, collapsed to a single
// concrete type since this module has no async/decorator/cost-tracking
// variants to abstract behind an interface.
type Program struct {
	ast *celast.Expr
	it  *interpreter.Interpreter
}

// Compile builds a Program from a pre-built AST (spec §6.1: the parser is
// consumed externally and is out of this module's scope; callers construct
// or receive an *celast.Expr and hand it here instead of a source string).
// The returned Program is immutable and may be executed against any number
// of Contexts built from e, including concurrently (spec §5).
func (e *Env) Compile(ast *celast.Expr) *Program {
	return &Program{
		ast: ast,
		it:  interpreter.New(e.dispatcher, e.features),
	}
}

// Execute evaluates the Program's AST against ctx, per spec §2's
// `execute(ast, context)` and §6.2's `Program.execute`.
func (p *Program) Execute(ctx *celcontext.Context) value.Value {
	return p.it.Eval(p.ast, ctx)
}

// AST returns the read-only AST this Program was compiled from (spec §6.2:
// `Program.ast() → &AST`).
func (p *Program) AST() *celast.Expr {
	return p.ast
}
