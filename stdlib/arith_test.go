package stdlib

import (
	"testing"

	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

func newTestContext() *celcontext.Context {
	ctx := celcontext.NewContext(0)
	Register(ctx, interpreter.AllFeatures())
	return ctx
}

// celcontextNewTestContext returns a context with only the regex feature
// toggled, leaving time/json at their zero value, for feature-gating tests.
func celcontextNewTestContext(t *testing.T, regex bool) *celcontext.Context {
	t.Helper()
	ctx := celcontext.NewContext(0)
	Register(ctx, interpreter.FeatureSet{Regex: regex})
	return ctx
}

func dispatch(t *testing.T, ctx *celcontext.Context, name string, args ...value.Value) value.Value {
	t.Helper()
	v, ok := ctx.Dispatch(name, args)
	if !ok {
		t.Fatalf("no overload matched for %s(%v)", name, args)
	}
	return v
}

func TestRegisterArith(t *testing.T) {
	ctx := newTestContext()

	got := dispatch(t, ctx, "_+_", value.Int(2), value.Int(3))
	if got.(value.Int) != 5 {
		t.Fatalf("2+3 = %v, want 5", got)
	}

	got = dispatch(t, ctx, "_/_", value.Int(4), value.Int(0))
	e, ok := value.AsError(got)
	if !ok || e.Code != value.DivideByZero {
		t.Fatalf("4/0 = %#v, want DivideByZero", got)
	}

	got = dispatch(t, ctx, "_+_", value.String("a"), value.Int(1))
	e, ok = value.AsError(got)
	if !ok || e.Code != value.NoSuchOverload {
		t.Fatalf("\"a\"+1 = %#v, want NoSuchOverload", got)
	}
}
