package value

// Dynamic is a lazy projection of a host object exposing named fields on
// demand, grounded on interpreter/types/object.go's ObjectValue and
// common/types/provider.go's lazy field resolution. A host integrates by
// implementing DynamicProvider and wrapping it in a Dynamic.
type DynamicProvider interface {
	// TypeName is the CEL type name reported for this host object.
	TypeName() string
	// FieldNames enumerates the fields Materialize/Field may return, for
	// debugging; order is not semantically significant.
	FieldNames() []string
	// Field returns the named field projected as a CEL Value, or
	// (nil, false) if the field is absent. Field access is lazy: the host
	// is expected to do the minimal work to answer a single field, not to
	// build the whole object.
	Field(name string) (Value, bool)
	// Materialize eagerly converts the whole host object into a CEL Value,
	// typically a Map. Used when AutoMaterialize is set, or when a Dynamic
	// value needs to be compared, iterated, or otherwise treated as a
	// first-class value rather than surveyed field-by-field.
	Materialize() Value
}

// Dynamic wraps a DynamicProvider. AutoMaterialize forces eager conversion
// for primitive-like host types where lazy field access has no benefit
// (spec §4.1 DynamicType: "A flag auto_materialize forces eager conversion
// for primitive-like types"): Field resolves through the materialized value
// instead of calling Provider.Field directly, so a provider need only
// implement Materialize correctly to opt in. Equal always materializes
// regardless of the flag, since comparing two Dynamic values needs the
// whole value either way.
type Dynamic struct {
	Provider        DynamicProvider
	AutoMaterialize bool
}

func (d Dynamic) Kind() Kind       { return KindDynamic }
func (d Dynamic) TypeName() string { return d.Provider.TypeName() }

func (d Dynamic) Equal(other Value) bool {
	return d.Materialize().Equal(other)
}

func (d Dynamic) Field(name string) (Value, bool) {
	if d.AutoMaterialize {
		f, ok := d.Materialize().(Fielder)
		if !ok {
			return nil, false
		}
		return f.Field(name)
	}
	return d.Provider.Field(name)
}

// Materialize returns the fully-owned CEL value for this host object,
// converting via the provider every time materialization is requested (the
// interpreter is responsible for not calling this on a hot field-access
// path; see interpreter/select.go).
func (d Dynamic) Materialize() Value {
	return d.Provider.Materialize()
}
