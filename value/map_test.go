package value

import "testing"

func TestMapStringKeyUIntIndexIsNoSuchOverload(t *testing.T) {
	m, err := NewMap([]Value{String("a"), String("b")}, []Value{Int(1), Int(2)})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	got := m.Get(Uint(0))
	e, ok := AsError(got)
	if !ok || e.Code != NoSuchOverload {
		t.Fatalf("expected NoSuchOverload, got %#v", got)
	}
}

func TestMapCrossNumericKeyLookup(t *testing.T) {
	m, err := NewMap([]Value{Int(1)}, []Value{String("one")})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	got := m.Get(Uint(1))
	s, ok := got.(String)
	if !ok || s != "one" {
		t.Fatalf("expected cross-type numeric lookup to find entry, got %#v", got)
	}
}

func TestMapMissingNumericKeyIsNoSuchKey(t *testing.T) {
	m, err := NewMap([]Value{Int(1)}, []Value{String("one")})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	got := m.Get(Int(2))
	e, ok := AsError(got)
	if !ok || e.Code != NoSuchKey {
		t.Fatalf("expected NoSuchKey, got %#v", got)
	}
}

func TestMapInvalidKeyTypeRejectedAtConstruction(t *testing.T) {
	_, err := NewMap([]Value{Double(1.5)}, []Value{Int(1)})
	if err == nil {
		t.Fatal("expected double key to be rejected")
	}
}

func TestMapFieldForSelect(t *testing.T) {
	m, _ := NewMap([]Value{String("a")}, []Value{Int(1)})
	v, found := m.Field("a")
	if !found || !v.Equal(Int(1)) {
		t.Fatalf("expected Field(a)=1, got %#v, %v", v, found)
	}
	if _, found := m.Field("b"); found {
		t.Fatal("expected Field(b) to be absent")
	}
}
