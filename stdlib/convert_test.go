package stdlib

import (
	"testing"

	"github.com/cel-core/cel/value"
)

func TestRegisterConvertRoundTrips(t *testing.T) {
	ctx := newTestContext()

	tests := []struct {
		name string
		fn   string
		in   value.Value
		want value.Value
	}{
		{"string to int", "int", value.String("42"), value.Int(42)},
		{"double to int", "int", value.Double(3.9), value.Int(3)},
		{"int to uint", "uint", value.Int(7), value.Uint(7)},
		{"int to double", "double", value.Int(2), value.Double(2.0)},
		{"int to string", "string", value.Int(42), value.String("42")},
		{"bool to string", "string", value.Bool(true), value.String("true")},
		{"string to bytes", "bytes", value.String("ab"), value.Bytes("ab")},
		{"string to bool", "bool", value.String("true"), value.Bool(true)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := dispatch(t, ctx, tc.fn, tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("%s(%v) = %v, want %v", tc.fn, tc.in, got, tc.want)
			}
		})
	}
}

func TestRegisterConvertErrors(t *testing.T) {
	ctx := newTestContext()

	got := dispatch(t, ctx, "int", value.String("not-a-number"))
	e, ok := value.AsError(got)
	if !ok || e.Code != value.ConversionError {
		t.Fatalf("int(\"not-a-number\") = %#v, want ConversionError", got)
	}

	got = dispatch(t, ctx, "uint", value.Int(-1))
	e, ok = value.AsError(got)
	if !ok || e.Code != value.ConversionError {
		t.Fatalf("uint(-1) = %#v, want ConversionError", got)
	}
}

func TestRegisterConvertDynAndType(t *testing.T) {
	ctx := newTestContext()

	got := dispatch(t, ctx, "dyn", value.Int(5))
	if got.(value.Int) != 5 {
		t.Fatalf("dyn(5) = %v, want 5", got)
	}

	got = dispatch(t, ctx, "type", value.Int(5))
	typ, ok := got.(value.Type)
	if !ok || typ.Name != "int" {
		t.Fatalf("type(5) = %#v, want Type{int}", got)
	}
}

func TestRegisterConvertMaxMin(t *testing.T) {
	ctx := newTestContext()

	got := dispatch(t, ctx, "max", value.Int(3), value.Int(9), value.Int(1))
	if got.(value.Int) != 9 {
		t.Fatalf("max(3,9,1) = %v, want 9", got)
	}
	got = dispatch(t, ctx, "min", value.Int(3), value.Int(9), value.Int(1))
	if got.(value.Int) != 1 {
		t.Fatalf("min(3,9,1) = %v, want 1", got)
	}
}
