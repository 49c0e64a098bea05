// Package value implements the CEL dynamic value universe: the tagged set of
// runtime types an expression can produce, their capability traits
// (equality, ordering, arithmetic, indexing, containment), and the
// conversion rules between them.
//
// A Value is immutable once constructed; operations that appear to mutate a
// value (list append, string concatenation) return a new Value instead.
package value

import "fmt"

// Kind identifies which variant of the CEL value universe a Value belongs
// to. Kind is used for fast dispatch in the interpreter and standard
// library; it is not exposed to CEL expressions directly (CEL's type()
// builtin returns a Value, not a Kind).
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindDouble
	KindBool
	KindString
	KindBytes
	KindNull
	KindDuration
	KindTimestamp
	KindList
	KindMap
	KindOptional
	KindOpaque
	KindDynamic
	KindType
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindNull:
		return "null_type"
	case KindDuration:
		return "google.protobuf.Duration"
	case KindTimestamp:
		return "google.protobuf.Timestamp"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindOptional:
		return "optional_type"
	case KindOpaque:
		return "opaque"
	case KindDynamic:
		return "dyn"
	case KindType:
		return "type"
	case KindErr:
		return "error"
	}
	return "unknown"
}

// Value is the universal interface every CEL runtime value satisfies. The
// interpreter and standard library never type-switch on a concrete Go type
// directly when a capability interface below will do; Kind/TypeName remain
// for diagnostics, error messages and the `type()` builtin.
type Value interface {
	// Kind reports which value universe variant this is.
	Kind() Kind

	// TypeName is the CEL type name as it would be printed by `type(x)`.
	TypeName() string

	// Equal reports whether the receiver and other are CEL-equal, following
	// the cross-type numeric rule of spec §3.4. Equality never errors: for
	// incomparable types it is simply false.
	Equal(other Value) bool
}

// Comparer is implemented by values with a defined total order: numerics
// (cross-type), strings, bytes, durations and timestamps.
type Comparer interface {
	Value
	// Compare returns -1, 0, 1 if the receiver is less than, equal to, or
	// greater than other. ok is false when the two values are not mutually
	// ordered (incomparable types, or NaN on either side).
	Compare(other Value) (cmp int, ok bool)
}

// Adder, Subtractor, Multiplier, Divider and Modder implement checked binary
// arithmetic. Each returns an *Err value (never panics) when the operand
// types don't combine or the operation overflows/divides by zero.
type Adder interface {
	Value
	Add(other Value) Value
}

type Subtractor interface {
	Value
	Subtract(other Value) Value
}

type Multiplier interface {
	Value
	Multiply(other Value) Value
}

type Divider interface {
	Value
	Divide(other Value) Value
}

type Modder interface {
	Value
	Modulo(other Value) Value
}

// Negator implements unary negation (`-x`).
type Negator interface {
	Value
	Negate() Value
}

// Indexer implements `e[k]` for lists and maps.
type Indexer interface {
	Value
	// Get returns the value at key, or an *Err (NoSuchKey/IndexOutOfBounds/
	// NoSuchOverload) if it cannot be retrieved.
	Get(key Value) Value
}

// Container implements `size(x)` and the `in` operator.
type Container interface {
	Value
	Size() int
	// Contains reports whether elem is a member (lists: linear scan by
	// Equal; maps: key membership).
	Contains(elem Value) bool
}

// Iterable is implemented by List and Map (map iteration yields keys) for
// the comprehension engine.
type Iterable interface {
	Value
	Iterator() Iterator
}

// Iterator walks an Iterable's elements in a single forward pass.
type Iterator interface {
	HasNext() bool
	Next() Value
}

// Fielder is implemented by values that expose named fields: Map (string
// keys only, for has()/select purposes it still requires Map semantics),
// Dynamic host objects, and field-bearing Opaque values.
type Fielder interface {
	Value
	// Field returns the value at name and true, or (nil, false) if absent.
	Field(name string) (Value, bool)
}

// JSONProjector is implemented by values that can project themselves into a
// google.protobuf.Value-shaped structure when the `json` feature is
// enabled; see value/json.go.
type JSONProjector interface {
	Value
	ToJSON() (interface{}, error)
}

func unsupported(op string, a, b Value) Value {
	if b == nil {
		return NewErrf(NoSuchOverload, "unsupported overload: %s(%s)", op, a.TypeName())
	}
	return NewErrf(NoSuchOverload, "unsupported overload: %s(%s, %s)", op, a.TypeName(), b.TypeName())
}

// DebugString renders a Value approximately the way CEL source would spell
// it back; used only for diagnostics (error messages, debug tracing), never
// for semantic comparisons.
func DebugString(v Value) string {
	return fmt.Sprintf("%v", v)
}
