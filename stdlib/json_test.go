package stdlib

import (
	"strings"
	"testing"

	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

func jsonTestContext(t *testing.T, json bool) *celcontext.Context {
	t.Helper()
	ctx := celcontext.NewContext(0)
	Register(ctx, interpreter.FeatureSet{JSON: json})
	return ctx
}

func TestRegisterJSONProjectsScalarsAndContainers(t *testing.T) {
	ctx := jsonTestContext(t, true)

	got := dispatch(t, ctx, "toJson", value.Int(3))
	if s := string(got.(value.String)); s != "3" {
		t.Fatalf("toJson(3) = %q, want 3", s)
	}

	m, _ := value.NewMap([]value.Value{value.String("a")}, []value.Value{value.Int(1)})
	got = dispatch(t, ctx, "toJson", m)
	s := string(got.(value.String))
	if !strings.Contains(s, `"a"`) || !strings.Contains(s, "1") {
		t.Fatalf(`toJson({"a":1}) = %q, want it to contain "a" and 1`, s)
	}
}

func TestRegisterJSONProjectsOpaque(t *testing.T) {
	ctx := jsonTestContext(t, true)
	o := value.Opaque{
		Type: "widget",
		JSONFn: func() (interface{}, error) {
			return map[string]interface{}{"size": 3}, nil
		},
	}
	got := dispatch(t, ctx, "toJson", o)
	s := string(got.(value.String))
	if !strings.Contains(s, "size") {
		t.Fatalf("toJson(opaque) = %q, want it to contain size", s)
	}
}

func TestRegisterJSONGatedByFeature(t *testing.T) {
	ctx := jsonTestContext(t, false)
	got := dispatch(t, ctx, "toJson", value.Int(3))
	e, ok := value.AsError(got)
	if !ok || e.Code != value.NoSuchOverload {
		t.Fatalf("toJson(3) with json disabled = %#v, want NoSuchOverload", got)
	}
}
