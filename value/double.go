package value

import (
	"math"
	"strconv"
)

// Double is the CEL IEEE-754 binary64 value, grounded on
// common/types/double.go. Arithmetic is unchecked (IEEE semantics: overflow
// produces infinities, not an error, per spec §4.1).
type Double float64

func (d Double) Kind() Kind       { return KindDouble }
func (d Double) TypeName() string { return "double" }

func (d Double) Equal(other Value) bool {
	if math.IsNaN(float64(d)) {
		return false
	}
	switch o := other.(type) {
	case Double:
		return !math.IsNaN(float64(o)) && d == o
	case Int:
		return o.Equal(d)
	case Uint:
		return o.Equal(d)
	}
	return false
}

func (d Double) Compare(other Value) (int, bool) {
	if math.IsNaN(float64(d)) {
		return 0, false
	}
	switch o := other.(type) {
	case Double:
		if math.IsNaN(float64(o)) {
			return 0, false
		}
		return cmpFloat64(float64(d), float64(o)), true
	case Int:
		c, ok := compareIntDouble(int64(o), float64(d))
		if !ok {
			return 0, false
		}
		return -c, true
	case Uint:
		c, ok := compareUintDouble(uint64(o), float64(d))
		if !ok {
			return 0, false
		}
		return -c, true
	}
	return 0, false
}

func (d Double) Add(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return unsupported("add", d, other)
	}
	return d + o
}

func (d Double) Subtract(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return unsupported("subtract", d, other)
	}
	return d - o
}

func (d Double) Multiply(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return unsupported("multiply", d, other)
	}
	return d * o
}

func (d Double) Divide(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return unsupported("divide", d, other)
	}
	return d / o // IEEE-754: x/0 -> +-Inf, 0/0 -> NaN, never an ExecutionError.
}

func (d Double) Negate() Value {
	return -d
}

func (d Double) ConvertToString() String {
	return String(strconv.FormatFloat(float64(d), 'g', -1, 64))
}

func (d Double) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareIntDouble and compareUintDouble implement the mixed-type numeric
// ordering rule of spec §3.4: compare by mathematical value, valid whenever
// the double side is not NaN.
func compareIntDouble(i int64, d float64) (int, bool) {
	if math.IsNaN(d) {
		return 0, false
	}
	fi := float64(i)
	switch {
	case fi < d:
		return -1, true
	case fi > d:
		return 1, true
	default:
		return 0, true
	}
}

func compareUintDouble(u uint64, d float64) (int, bool) {
	if math.IsNaN(d) || d < 0 {
		if math.IsNaN(d) {
			return 0, false
		}
		return 1, true
	}
	fu := float64(u)
	switch {
	case fu < d:
		return -1, true
	case fu > d:
		return 1, true
	default:
		return 0, true
	}
}
