package value

// Optional is CEL's presence-or-absence wrapper, grounded on the semantics
// of spec §3.1/§4.4.5 (no surviving teacher file of this name — see
// DESIGN.md). Optional.none is distinct from Null: the zero Optional value
// (present == false) is the canonical "none".
type Optional struct {
	present bool
	value   Value
}

// OptionalNone is the canonical absent optional.
var OptionalNone = Optional{}

// OptionalOf wraps v as a present optional.
func OptionalOf(v Value) Optional {
	return Optional{present: true, value: v}
}

// OptionalOfNonZeroValue returns OptionalNone if v is the zero value for its
// type, else OptionalOf(v), per spec §4.4.5.
func OptionalOfNonZeroValue(v Value) Optional {
	if isZeroValue(v) {
		return OptionalNone
	}
	return OptionalOf(v)
}

func isZeroValue(v Value) bool {
	switch t := v.(type) {
	case Int:
		return t == 0
	case Uint:
		return t == 0
	case Double:
		return t == 0
	case Bool:
		return !bool(t)
	case String:
		return t == ""
	case Bytes:
		return len(t) == 0
	case Null:
		return true
	case List:
		return len(t) == 0
	case Map:
		return t.Size() == 0
	case Duration:
		return t == 0
	}
	return false
}

func (o Optional) Kind() Kind       { return KindOptional }
func (o Optional) TypeName() string { return "optional_type" }

// Equal never equates Optional.none with Null (spec §3.2); two optionals
// are equal only if both present and their payloads are equal, or both
// absent.
func (o Optional) Equal(other Value) bool {
	oo, ok := other.(Optional)
	if !ok {
		return false
	}
	if o.present != oo.present {
		return false
	}
	if !o.present {
		return true
	}
	return o.value.Equal(oo.value)
}

func (o Optional) HasValue() Bool { return Bool(o.present) }

// Value_ returns the wrapped value, or an InvalidArgument error when
// called on an absent optional (spec §4.4.5: "opt.value() (errors on
// none)"). Named Value_ to avoid colliding with Go's own notion of a
// getter named Value on an exported field; the standard library binds this
// to the CEL member `value()`.
func (o Optional) Value_() Value {
	if !o.present {
		return NewErrf(InvalidArgument, "optional.none() has no value")
	}
	return o.value
}

// Or returns the receiver if present, else other.
func (o Optional) Or(other Optional) Optional {
	if o.present {
		return o
	}
	return other
}

// OrValue returns the wrapped value if present, else fallback.
func (o Optional) OrValue(fallback Value) Value {
	if o.present {
		return o.value
	}
	return fallback
}
