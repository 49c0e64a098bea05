// This file contains a small driver demonstrating the engine end to end:
// build an AST with celast's factory helpers (there is no parser in this
// module's scope, see cel/program.go), compile it, and evaluate it against
// a Context. Mirrors the teacher's codelab/codelab.go pattern of one
// exercise function per example, glog for startup/result diagnostics.
package main

import (
	"github.com/golang/glog"

	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/cel"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

func main() {
	exerciseArithmetic()
	exerciseListFilter()
	exerciseOptionalChaining()
	exerciseHostFunction()
}

// exerciseArithmetic evaluates `2 + 3 * 4` and logs the result.
func exerciseArithmetic() {
	env := cel.NewEnv(cel.Features(interpreter.AllFeatures()))
	ctx := env.NewContext()

	mul := celast.NewCall(1, nil, "_*_", celast.NewLiteral(2, value.Int(3)), celast.NewLiteral(3, value.Int(4)))
	add := celast.NewCall(4, nil, "_+_", celast.NewLiteral(5, value.Int(2)), mul)

	result := env.Compile(add).Execute(ctx)
	glog.Infof("2 + 3 * 4 = %v", result)
}

// exerciseListFilter evaluates `[1, 2, 3].filter(x, x > 1)`.
func exerciseListFilter() {
	env := cel.NewEnv(cel.Features(interpreter.AllFeatures()))
	ctx := env.NewContext()

	list := celast.NewList(1, []*celast.Expr{
		celast.NewLiteral(2, value.Int(1)),
		celast.NewLiteral(3, value.Int(2)),
		celast.NewLiteral(4, value.Int(3)),
	}, nil)

	const iterVar = celast.ReservedPrefix + "iter"
	const accuVar = celast.ReservedPrefix + "accu"
	cond := celast.NewCall(5, nil, "_>_", celast.NewIdent(6, iterVar), celast.NewLiteral(7, value.Int(1)))
	step := celast.NewCall(8, nil, "_+_",
		celast.NewIdent(9, accuVar),
		celast.NewList(10, []*celast.Expr{celast.NewIdent(11, iterVar)}, nil),
	)
	conditionalStep := celast.NewConditional(12, cond, step, celast.NewIdent(13, accuVar))
	comprehension := celast.NewComprehension(14, list, iterVar, accuVar,
		celast.NewList(15, nil, nil), celast.NewLiteral(16, value.True), conditionalStep, celast.NewIdent(17, accuVar))

	result := env.Compile(comprehension).Execute(ctx)
	glog.Infof("[1,2,3].filter(x, x > 1) = %v", result)
}

// exerciseOptionalChaining evaluates `{"a": 1}[?"b"].orValue(42)`.
func exerciseOptionalChaining() {
	env := cel.NewEnv(cel.Features(interpreter.AllFeatures()))
	ctx := env.NewContext()

	mapLit := celast.NewMap(1,
		[]*celast.Expr{celast.NewLiteral(2, value.String("a"))},
		[]*celast.Expr{celast.NewLiteral(3, value.Int(1))},
		nil,
	)
	optIndex := celast.NewIndex(4, mapLit, celast.NewLiteral(5, value.String("b")), true)
	orValue := celast.NewCall(6, optIndex, "orValue", celast.NewLiteral(7, value.Int(42)))

	result := env.Compile(orValue).Execute(ctx)
	glog.Infof(`{"a":1}[?"b"].orValue(42) = %v`, result)
}

// exerciseHostFunction shows a host binding a custom function into the
// Context before evaluating against it, per spec §4.2/§4.6.
func exerciseHostFunction() {
	env := cel.NewEnv(cel.Features(interpreter.AllFeatures()))
	ctx := env.NewContext()
	ctx.AddFunction("greet", &celcontext.Function{
		ArgTypes: []value.Kind{value.KindString},
		Call: func(args []value.Value) value.Value {
			return value.String("hello, " + string(args[0].(value.String)))
		},
	})

	call := celast.NewCall(1, nil, "greet", celast.NewLiteral(2, value.String("world")))
	result := env.Compile(call).Execute(ctx)
	glog.Infof("greet(\"world\") = %v", result)
}
