package cel

import (
	"errors"
	"testing"

	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

// hostRecord is a minimal value.DynamicProvider: it answers field queries
// without ever building a Map, exercising FromGo's Dynamic-wrapping branch.
type hostRecord struct {
	fields map[string]value.Value
}

func (h hostRecord) TypeName() string { return "hostRecord" }
func (h hostRecord) FieldNames() []string {
	names := make([]string, 0, len(h.fields))
	for k := range h.fields {
		names = append(names, k)
	}
	return names
}
func (h hostRecord) Field(name string) (value.Value, bool) {
	v, ok := h.fields[name]
	return v, ok
}
func (h hostRecord) Materialize() value.Value {
	keys := make([]value.Value, 0, len(h.fields))
	values := make([]value.Value, 0, len(h.fields))
	for k, v := range h.fields {
		keys = append(keys, value.String(k))
		values = append(values, v)
	}
	m, _ := value.NewMap(keys, values)
	return m
}

func TestFromGoWrapsDynamicProviderAndSelectsField(t *testing.T) {
	host := hostRecord{fields: map[string]value.Value{"name": value.String("ok")}}
	cv, err := FromGo(host)
	if err != nil {
		t.Fatalf("FromGo: %v", err)
	}
	dyn, ok := cv.(value.Dynamic)
	if !ok {
		t.Fatalf("expected value.Dynamic, got %#v", cv)
	}
	sel := celast.NewSelect(1, celast.NewLiteral(2, dyn), "name", false)
	env := NewEnv(Features(interpreter.AllFeatures()))
	got := env.Compile(sel).Execute(env.NewContext())
	if got.(value.String) != "ok" {
		t.Fatalf("hostRecord.name = %v, want ok", got)
	}
}

func TestFromGoToGoWrapsErrorAsOpaque(t *testing.T) {
	cv, err := FromGo(errors.New("boom"))
	if err != nil {
		t.Fatalf("FromGo: %v", err)
	}
	opq, ok := cv.(value.Opaque)
	if !ok || opq.Type != "error" {
		t.Fatalf("expected Opaque{Type: error}, got %#v", cv)
	}
	back, err := ToGo(cv)
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	if back.(error).Error() != "boom" {
		t.Fatalf("round-trip mismatch: %#v", back)
	}
}

// TestCompileAndExecuteAdd covers spec §8 scenario 1: add(2, 3) == 5 with a
// host function bound into the Context.
func TestCompileAndExecuteAdd(t *testing.T) {
	env := NewEnv(Features(interpreter.AllFeatures()))
	ctx := env.NewContext()
	ctx.AddFunction("add", &celcontext.Function{
		ArgTypes: []value.Kind{value.KindInt, value.KindInt},
		Call: func(args []value.Value) value.Value {
			return args[0].(value.Int) + args[1].(value.Int)
		},
	})

	ast := celast.NewCall(1, nil, "add", celast.NewLiteral(2, value.Int(2)), celast.NewLiteral(3, value.Int(3)))
	prog := env.Compile(ast)

	got := prog.Execute(ctx)
	if got.(value.Int) != 5 {
		t.Fatalf("add(2,3) = %v, want 5", got)
	}
}

// TestCompileAndExecuteOptionalOrValue covers spec §8 scenario 5:
// {"a":1}[?"b"].orValue(42) == 42.
func TestCompileAndExecuteOptionalOrValue(t *testing.T) {
	env := NewEnv(Features(interpreter.AllFeatures()))
	ctx := env.NewContext()

	mapLit := celast.NewMap(1,
		[]*celast.Expr{celast.NewLiteral(2, value.String("a"))},
		[]*celast.Expr{celast.NewLiteral(3, value.Int(1))},
		nil,
	)
	optIndex := celast.NewIndex(4, mapLit, celast.NewLiteral(5, value.String("b")), true)
	orValue := celast.NewCall(6, optIndex, "orValue", celast.NewLiteral(7, value.Int(42)))

	prog := env.Compile(orValue)
	got := prog.Execute(ctx)
	if got.(value.Int) != 42 {
		t.Fatalf(`{"a":1}[?"b"].orValue(42) = %v, want 42`, got)
	}
}

// TestCompileAndExecuteOverflow covers spec §8 scenario 6: MaxInt64 + 1
// yields Overflow.
func TestCompileAndExecuteOverflow(t *testing.T) {
	env := NewEnv(Features(interpreter.AllFeatures()))
	ctx := env.NewContext()

	ast := celast.NewCall(1, nil, "_+_",
		celast.NewLiteral(2, value.Int(9223372036854775807)),
		celast.NewLiteral(3, value.Int(1)),
	)
	prog := env.Compile(ast)

	got := prog.Execute(ctx)
	e, ok := value.AsError(got)
	if !ok || e.Code != value.Overflow {
		t.Fatalf("MaxInt64+1 = %#v, want Overflow", got)
	}
}

func TestFromGoToGoRoundTrip(t *testing.T) {
	native := map[string]interface{}{"a": int64(1), "b": "x"}
	cv, err := FromGo(native)
	if err != nil {
		t.Fatalf("FromGo: %v", err)
	}
	back, err := ToGo(cv)
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	m := back.(map[string]interface{})
	if m["a"].(int64) != 1 || m["b"].(string) != "x" {
		t.Fatalf("round-trip mismatch: %#v", m)
	}
}
