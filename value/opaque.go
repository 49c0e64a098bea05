package value

// Opaque is a host-supplied value carrying a type tag, an equality
// predicate and an optional JSON projection, grounded on
// common/types/provider.go's TypeAdapter/TypeProvider contract generalized
// to a single closed struct instead of the teacher's open registry, since
// this module has no protobuf message provider to register against.
type Opaque struct {
	Type string
	Data interface{}

	// EqualFn compares two Opaque values of the same Type; Opaque values of
	// different Type are never equal regardless of EqualFn.
	EqualFn func(a, b interface{}) bool

	// FieldFn optionally exposes named fields, letting an Opaque act as a
	// Fielder for has()/Select (spec §4.4.1/§4.4.4 "Opaque and exposes
	// fields").
	FieldFn func(name string) (Value, bool)

	// JSONFn optionally projects Data into a JSON-shaped value for the
	// `json` feature gate.
	JSONFn func() (interface{}, error)
}

func (o Opaque) Kind() Kind       { return KindOpaque }
func (o Opaque) TypeName() string { return o.Type }

func (o Opaque) Equal(other Value) bool {
	oo, ok := other.(Opaque)
	if !ok || oo.Type != o.Type {
		return false
	}
	if o.EqualFn == nil {
		return false
	}
	return o.EqualFn(o.Data, oo.Data)
}

func (o Opaque) Field(name string) (Value, bool) {
	if o.FieldFn == nil {
		return nil, false
	}
	return o.FieldFn(name)
}

func (o Opaque) ToJSON() (interface{}, error) {
	if o.JSONFn == nil {
		return nil, NewErrf(ConversionError, "opaque type %q has no JSON projection", o.Type)
	}
	return o.JSONFn()
}
