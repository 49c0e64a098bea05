package stdlib

import (
	"regexp"

	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

// registerContainer wires size(), the `in` operator (internal name "@in",
// matching the teacher's operators.go naming convention) and the String
// member functions contains/startsWith/endsWith/matches, per spec §4.7.
func registerContainer(ctx *celcontext.Context, features interpreter.FeatureSet) {
	ctx.AddFunction("size", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 1 {
				return value.NewErrf(value.InvalidArgument, "size() takes exactly one argument")
			}
			c, ok := args[0].(value.Container)
			if !ok {
				return value.NewErrf(value.NoSuchOverload, "size() unsupported for type %s", args[0].TypeName())
			}
			return value.Int(c.Size())
		},
	})

	ctx.AddFunction("@in", binaryOverload(func(a, b value.Value) value.Value {
		c, ok := b.(value.Container)
		if !ok {
			return noSuchOverload("in", a, b)
		}
		return value.Bool(c.Contains(a))
	}))

	ctx.AddFunction("contains", memberString(func(s, arg value.String) value.Value {
		return s.Contains(arg)
	}))
	ctx.AddFunction("startsWith", memberString(func(s, arg value.String) value.Value {
		return s.StartsWith(arg)
	}))
	ctx.AddFunction("endsWith", memberString(func(s, arg value.String) value.Value {
		return s.EndsWith(arg)
	}))

	ctx.AddFunction("matches", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if !features.Regex {
				return value.NewErrf(value.NoSuchOverload, "matches() requires the regex feature")
			}
			if len(args) != 2 {
				return value.NewErrf(value.InvalidArgument, "matches() takes a receiver and a pattern")
			}
			s, ok1 := args[0].(value.String)
			pat, ok2 := args[1].(value.String)
			if !ok1 || !ok2 {
				return noSuchOverload("matches", args[0], args[1])
			}
			re, err := regexp.Compile(string(pat))
			if err != nil {
				return value.NewErrf(value.InvalidArgument, "invalid regex %q: %v", pat, err)
			}
			return value.Bool(re.MatchString(string(s)))
		},
	})
}

func memberString(fn func(s, arg value.String) value.Value) *celcontext.Function {
	return &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 2 {
				return value.NewErrf(value.InvalidArgument, "string member function requires a receiver and one argument")
			}
			s, ok1 := args[0].(value.String)
			arg, ok2 := args[1].(value.String)
			if !ok1 || !ok2 {
				return noSuchOverload("string member call", args[0], args[1])
			}
			return fn(s, arg)
		},
	}
}
