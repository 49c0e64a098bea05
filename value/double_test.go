package value

import (
	"math"
	"testing"
)

func TestDoubleNaNNeverEqual(t *testing.T) {
	nan := Double(math.NaN())
	if nan.Equal(nan) {
		t.Error("NaN must not equal itself")
	}
	if nan.Equal(Double(1)) {
		t.Error("NaN must not equal any other double")
	}
}

func TestDoubleNaNOrderingAlwaysFalse(t *testing.T) {
	nan := Double(math.NaN())
	if _, ok := nan.Compare(Double(1)); ok {
		t.Error("NaN must be incomparable")
	}
	if _, ok := Double(1).Compare(nan); ok {
		t.Error("comparisons against NaN must be incomparable from either side")
	}
}

func TestDoubleDivideByZeroIsIEEE(t *testing.T) {
	got := Double(1).Divide(Double(0))
	d, ok := got.(Double)
	if !ok || !math.IsInf(float64(d), 1) {
		t.Fatalf("expected +Inf, got %#v", got)
	}
	got = Double(0).Divide(Double(0))
	d, ok = got.(Double)
	if !ok || !math.IsNaN(float64(d)) {
		t.Fatalf("expected NaN, got %#v", got)
	}
}
