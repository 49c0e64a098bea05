package value

// Type is the value returned by the `type()` conversion built-in: a
// first-class handle on another value's CEL type name, grounded on the
// teacher's `TypeType`/`NewTypeValue` singletons in common/types/types.go,
// collapsed here to the fields this module's scope actually needs (no
// checker-time type hierarchy).
type Type struct {
	Name string
}

func (t Type) Kind() Kind       { return KindType }
func (t Type) TypeName() string { return "type" }

func (t Type) Equal(other Value) bool {
	o, ok := other.(Type)
	return ok && t.Name == o.Name
}

func (t Type) String() string { return t.Name }

// TypeOf returns the Type value describing v's runtime type.
func TypeOf(v Value) Type {
	return Type{Name: v.TypeName()}
}
