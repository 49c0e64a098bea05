package value

import (
	"fmt"
	"strconv"
)

// Int is the CEL signed 64-bit integer value, grounded on
// common/types/int.go with checked arithmetic wired to overflow.go instead
// of the teacher's unchecked `i + other.(Int)`.
type Int int64

func (i Int) Kind() Kind       { return KindInt }
func (i Int) TypeName() string { return "int" }

func (i Int) Equal(other Value) bool {
	switch o := other.(type) {
	case Int:
		return i == o
	case Uint:
		return i >= 0 && uint64(i) == uint64(o)
	case Double:
		return float64(i) == float64(o) && Int(float64(i)) == i
	}
	return false
}

func (i Int) Compare(other Value) (int, bool) {
	switch o := other.(type) {
	case Int:
		return cmpInt64(int64(i), int64(o)), true
	case Uint:
		if i < 0 {
			return -1, true
		}
		return cmpUint64(uint64(i), uint64(o)), true
	case Double:
		return compareIntDouble(int64(i), float64(o))
	}
	return 0, false
}

func (i Int) Add(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return unsupported("add", i, other)
	}
	r, ok := addInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErrf(Overflow, "integer overflow in %d + %d", i, o)
	}
	return Int(r)
}

func (i Int) Subtract(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return unsupported("subtract", i, other)
	}
	r, ok := subtractInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErrf(Overflow, "integer overflow in %d - %d", i, o)
	}
	return Int(r)
}

func (i Int) Multiply(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return unsupported("multiply", i, other)
	}
	r, ok := multiplyInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErrf(Overflow, "integer overflow in %d * %d", i, o)
	}
	return Int(r)
}

func (i Int) Divide(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return unsupported("divide", i, other)
	}
	if o == 0 {
		return NewErrf(DivideByZero, "division by zero")
	}
	r, ok := divideInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErrf(Overflow, "integer overflow in %d / %d", i, o)
	}
	return Int(r)
}

func (i Int) Modulo(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return unsupported("modulo", i, other)
	}
	if o == 0 {
		return NewErrf(DivideByZero, "modulus by zero")
	}
	r, ok := moduloInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErrf(Overflow, "integer overflow in %d %% %d", i, o)
	}
	return Int(r)
}

func (i Int) Negate() Value {
	r, ok := negateInt64Checked(int64(i))
	if !ok {
		return NewErrf(Overflow, "integer overflow negating %d", i)
	}
	return Int(r)
}

// ConvertToString renders the int() -> string() conversion path used by the
// standard library's string() builtin.
func (i Int) ConvertToString() String {
	return String(strconv.FormatInt(int64(i), 10))
}

func (i Int) String() string {
	return fmt.Sprintf("%d", int64(i))
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
