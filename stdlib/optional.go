package stdlib

import (
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

// registerOptional wires the optional namespace functions (optional.of,
// optional.ofNonZeroValue, optional.none) and the member functions
// hasValue/value/or/orValue per spec §4.4.5 and SPEC_FULL Supplemented
// Features item 1.
func registerOptional(ctx *celcontext.Context) {
	ctx.AddFunction("optional.of", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 1 {
				return value.NewErrf(value.InvalidArgument, "optional.of() takes exactly one argument")
			}
			return value.OptionalOf(args[0])
		},
	})
	ctx.AddFunction("optional.ofNonZeroValue", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 1 {
				return value.NewErrf(value.InvalidArgument, "optional.ofNonZeroValue() takes exactly one argument")
			}
			return value.OptionalOfNonZeroValue(args[0])
		},
	})
	ctx.AddFunction("optional.none", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 0 {
				return value.NewErrf(value.InvalidArgument, "optional.none() takes no arguments")
			}
			return value.OptionalNone
		},
	})

	ctx.AddFunction("hasValue", optionalMember(func(o value.Optional) value.Value { return o.HasValue() }))
	ctx.AddFunction("value", optionalMember(func(o value.Optional) value.Value { return o.Value_() }))

	ctx.AddFunction("or", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 2 {
				return value.NewErrf(value.InvalidArgument, "or() takes a receiver and one argument")
			}
			recv, ok := args[0].(value.Optional)
			if !ok {
				return noSuchOverload("or", args[0], args[1])
			}
			other, ok := args[1].(value.Optional)
			if !ok {
				return noSuchOverload("or", args[0], args[1])
			}
			return recv.Or(other)
		},
	})
	ctx.AddFunction("orValue", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 2 {
				return value.NewErrf(value.InvalidArgument, "orValue() takes a receiver and one argument")
			}
			recv, ok := args[0].(value.Optional)
			if !ok {
				return noSuchOverload("orValue", args[0], args[1])
			}
			return recv.OrValue(args[1])
		},
	})
}

func optionalMember(fn func(value.Optional) value.Value) *celcontext.Function {
	return &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 1 {
				return value.NewErrf(value.InvalidArgument, "optional member function takes only a receiver")
			}
			o, ok := args[0].(value.Optional)
			if !ok {
				return value.NewErrf(value.NoSuchOverload, "unsupported receiver type %s", args[0].TypeName())
			}
			return fn(o)
		},
	}
}
