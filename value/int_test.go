package value

import (
	"math"
	"testing"
)

func TestIntArithmeticOverflow(t *testing.T) {
	tests := []struct {
		name string
		got  Value
	}{
		{"add", Int(math.MaxInt64).Add(Int(1))},
		{"subtract", Int(math.MinInt64).Subtract(Int(1))},
		{"multiply", Int(math.MaxInt64).Multiply(Int(2))},
		{"negate", Int(math.MinInt64).Negate()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := AsError(tc.got)
			if !ok {
				t.Fatalf("expected *Err, got %#v", tc.got)
			}
			if e.Code != Overflow {
				t.Fatalf("expected Overflow, got %v", e.Code)
			}
		})
	}
}

func TestIntDivideByZero(t *testing.T) {
	for _, op := range []struct {
		name string
		got  Value
	}{
		{"divide", Int(5).Divide(Int(0))},
		{"modulo", Int(5).Modulo(Int(0))},
	} {
		e, ok := AsError(op.got)
		if !ok || e.Code != DivideByZero {
			t.Fatalf("%s: expected DivideByZero, got %#v", op.name, op.got)
		}
	}
}

func TestIntCrossTypeEquality(t *testing.T) {
	if !Int(5).Equal(Uint(5)) {
		t.Error("Int(5) should equal Uint(5)")
	}
	if !Uint(5).Equal(Int(5)) {
		t.Error("Uint(5) should equal Int(5)")
	}
	if Int(-1).Equal(Uint(18446744073709551615)) {
		t.Error("negative Int should never equal any Uint")
	}
	if !Int(5).Equal(Double(5.0)) {
		t.Error("Int(5) should equal Double(5.0)")
	}
	if Int(5).Equal(Double(5.5)) {
		t.Error("Int(5) should not equal Double(5.5)")
	}
	if Int(5).Equal(String("5")) {
		t.Error("Int should never equal String")
	}
}

func TestIntOrdering(t *testing.T) {
	c, ok := Int(3).Compare(Double(3.5))
	if !ok || c != -1 {
		t.Fatalf("expected -1, true; got %d, %v", c, ok)
	}
	c, ok = Int(3).Compare(Uint(2))
	if !ok || c != 1 {
		t.Fatalf("expected 1, true; got %d, %v", c, ok)
	}
	if _, ok := Int(3).Compare(String("x")); ok {
		t.Fatal("expected incomparable types to report ok=false")
	}
}
