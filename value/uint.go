package value

import (
	"fmt"
	"strconv"
)

// Uint is the CEL unsigned 64-bit integer value, grounded on
// common/types/uint.go.
type Uint uint64

func (u Uint) Kind() Kind       { return KindUint }
func (u Uint) TypeName() string { return "uint" }

func (u Uint) Equal(other Value) bool {
	switch o := other.(type) {
	case Uint:
		return u == o
	case Int:
		return o.Equal(u)
	case Double:
		return float64(u) == float64(o) && Uint(float64(u)) == u
	}
	return false
}

func (u Uint) Compare(other Value) (int, bool) {
	switch o := other.(type) {
	case Uint:
		return cmpUint64(uint64(u), uint64(o)), true
	case Int:
		c, ok := o.Compare(u)
		if !ok {
			return 0, false
		}
		return -c, true
	case Double:
		return compareUintDouble(uint64(u), float64(o))
	}
	return 0, false
}

func (u Uint) Add(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return unsupported("add", u, other)
	}
	r, ok := addUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErrf(Overflow, "unsigned integer overflow in %d + %d", u, o)
	}
	return Uint(r)
}

func (u Uint) Subtract(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return unsupported("subtract", u, other)
	}
	r, ok := subtractUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErrf(Overflow, "unsigned integer overflow in %d - %d", u, o)
	}
	return Uint(r)
}

func (u Uint) Multiply(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return unsupported("multiply", u, other)
	}
	r, ok := multiplyUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErrf(Overflow, "unsigned integer overflow in %d * %d", u, o)
	}
	return Uint(r)
}

func (u Uint) Divide(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return unsupported("divide", u, other)
	}
	if o == 0 {
		return NewErrf(DivideByZero, "division by zero")
	}
	return Uint(uint64(u) / uint64(o))
}

func (u Uint) Modulo(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return unsupported("modulo", u, other)
	}
	if o == 0 {
		return NewErrf(DivideByZero, "modulus by zero")
	}
	return Uint(uint64(u) % uint64(o))
}

func (u Uint) ConvertToString() String {
	return String(strconv.FormatUint(uint64(u), 10))
}

func (u Uint) String() string {
	return fmt.Sprintf("%d", uint64(u))
}
