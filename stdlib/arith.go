// Package stdlib implements the Standard Library component (spec §4.7):
// the built-in functions every CEL program gets for free, registered onto a
// celcontext.Context the same way a host would register its own functions
// (spec §4.2 add_function). Grounded on interpreter/functions/standard.go's
// StandardBuiltins() registration list in the teacher, generalized from its
// native-arity adapter machinery to this module's Kind-based ArgTypes match
// since the value universe here is closed (no arbitrary native Go types to
// adapt).
package stdlib

import (
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

// registerArith registers each operator for every value that implements the given
// capability function, dispatching via a runtime type assertion rather than
// per-(type,type) overload entries: CEL operators are "any two operands of
// matching concrete type that implement the capability," which the
// Adder/Subtractor/etc. interfaces already encode, so one generic overload
// per operator name covers every numeric/string/bytes/list/duration/
// timestamp combination spec §4.1 lists.
func registerArith(ctx *celcontext.Context) {
	ctx.AddFunction("_+_", binaryOverload(func(a, b value.Value) value.Value {
		adder, ok := a.(value.Adder)
		if !ok {
			return noSuchOverload("add", a, b)
		}
		return adder.Add(b)
	}))
	ctx.AddFunction("_-_", binaryOverload(func(a, b value.Value) value.Value {
		sub, ok := a.(value.Subtractor)
		if !ok {
			return noSuchOverload("subtract", a, b)
		}
		return sub.Subtract(b)
	}))
	ctx.AddFunction("_*_", binaryOverload(func(a, b value.Value) value.Value {
		mul, ok := a.(value.Multiplier)
		if !ok {
			return noSuchOverload("multiply", a, b)
		}
		return mul.Multiply(b)
	}))
	ctx.AddFunction("_/_", binaryOverload(func(a, b value.Value) value.Value {
		div, ok := a.(value.Divider)
		if !ok {
			return noSuchOverload("divide", a, b)
		}
		return div.Divide(b)
	}))
	ctx.AddFunction("_%_", binaryOverload(func(a, b value.Value) value.Value {
		mod, ok := a.(value.Modder)
		if !ok {
			return noSuchOverload("modulo", a, b)
		}
		return mod.Modulo(b)
	}))
}

func binaryOverload(fn func(a, b value.Value) value.Value) *celcontext.Function {
	return &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 2 {
				return value.NewErrf(value.InvalidArgument, "binary operator requires exactly 2 arguments")
			}
			return fn(args[0], args[1])
		},
	}
}

func noSuchOverload(op string, a, b value.Value) value.Value {
	return value.NewErrf(value.NoSuchOverload, "unsupported overload: %s(%s, %s)", op, a.TypeName(), b.TypeName())
}
