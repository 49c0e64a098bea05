package stdlib

import (
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

// registerCompare wires the six comparison operators, grounded on
// common/types/*.go's Compare/Equal methods and spec §3.4's equality and
// ordering rules. `==`/`!=` never error (equality is total across all
// value pairs, cross-category just means false); the four ordering
// operators use Comparer and report NoSuchOverload when incomparable (spec
// §3.4: "Comparison between incomparable types yields NoSuchOverload").
func registerCompare(ctx *celcontext.Context) {
	ctx.AddFunction("_==_", binaryOverload(func(a, b value.Value) value.Value {
		return value.Bool(a.Equal(b))
	}))
	ctx.AddFunction("_!=_", binaryOverload(func(a, b value.Value) value.Value {
		return value.Bool(!a.Equal(b))
	}))
	ctx.AddFunction("_<_", orderOverload(func(c int) bool { return c < 0 }))
	ctx.AddFunction("_<=_", orderOverload(func(c int) bool { return c <= 0 }))
	ctx.AddFunction("_>_", orderOverload(func(c int) bool { return c > 0 }))
	ctx.AddFunction("_>=_", orderOverload(func(c int) bool { return c >= 0 }))
}

func orderOverload(accept func(cmp int) bool) *celcontext.Function {
	return binaryOverload(func(a, b value.Value) value.Value {
		cmp, ok := a.(value.Comparer)
		if !ok {
			return noSuchOverload("compare", a, b)
		}
		c, ok := cmp.Compare(b)
		if !ok {
			return noSuchOverload("compare", a, b)
		}
		return value.Bool(accept(c))
	})
}
