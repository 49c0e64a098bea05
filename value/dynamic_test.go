package value

import "testing"

// fieldProvider is a DynamicProvider that records whether its lazy Field
// method was actually called, to distinguish lazy from eager field access.
type fieldProvider struct {
	fieldCalls       int
	materializeCalls int
}

func (p *fieldProvider) TypeName() string     { return "record" }
func (p *fieldProvider) FieldNames() []string { return []string{"a"} }
func (p *fieldProvider) Field(name string) (Value, bool) {
	p.fieldCalls++
	if name == "a" {
		return Int(1), true
	}
	return nil, false
}
func (p *fieldProvider) Materialize() Value {
	p.materializeCalls++
	m, _ := NewMap([]Value{String("a")}, []Value{Int(1)})
	return m
}

func TestDynamicFieldIsLazyByDefault(t *testing.T) {
	p := &fieldProvider{}
	d := Dynamic{Provider: p}
	v, ok := d.Field("a")
	if !ok || v.(Int) != 1 {
		t.Fatalf("d.Field(a) = %#v, %v, want 1, true", v, ok)
	}
	if p.fieldCalls != 1 || p.materializeCalls != 0 {
		t.Fatalf("expected one lazy Field call and zero Materialize calls, got %d/%d", p.fieldCalls, p.materializeCalls)
	}
}

func TestDynamicFieldMaterializesWhenAutoMaterializeSet(t *testing.T) {
	p := &fieldProvider{}
	d := Dynamic{Provider: p, AutoMaterialize: true}
	v, ok := d.Field("a")
	if !ok || v.(Int) != 1 {
		t.Fatalf("d.Field(a) = %#v, %v, want 1, true", v, ok)
	}
	if p.fieldCalls != 0 || p.materializeCalls != 1 {
		t.Fatalf("expected zero lazy Field calls and one Materialize call, got %d/%d", p.fieldCalls, p.materializeCalls)
	}
}

func TestDynamicEqualAlwaysMaterializes(t *testing.T) {
	p := &fieldProvider{}
	d := Dynamic{Provider: p}
	other, _ := NewMap([]Value{String("a")}, []Value{Int(1)})
	if !d.Equal(other) {
		t.Fatal("expected Dynamic to equal its materialized Map representation")
	}
	if p.materializeCalls != 1 {
		t.Fatalf("expected Equal to materialize exactly once, got %d", p.materializeCalls)
	}
}

func TestDynamicTypeNameDelegatesToProvider(t *testing.T) {
	d := Dynamic{Provider: &fieldProvider{}}
	if d.TypeName() != "record" {
		t.Fatalf("d.TypeName() = %q, want record", d.TypeName())
	}
}
