package value

import "testing"

func TestOpaqueEqualRequiresSameTypeAndEqualFn(t *testing.T) {
	a := Opaque{Type: "widget", Data: 1, EqualFn: func(a, b interface{}) bool { return a.(int) == b.(int) }}
	b := Opaque{Type: "widget", Data: 1, EqualFn: a.EqualFn}
	c := Opaque{Type: "widget", Data: 2, EqualFn: a.EqualFn}
	other := Opaque{Type: "gadget", Data: 1, EqualFn: a.EqualFn}

	if !a.Equal(b) {
		t.Fatal("expected equal Opaque values of the same type to compare equal")
	}
	if a.Equal(c) {
		t.Fatal("expected differing Data to compare unequal")
	}
	if a.Equal(other) {
		t.Fatal("expected differing Type to compare unequal regardless of EqualFn")
	}
}

func TestOpaqueEqualWithoutEqualFnIsAlwaysFalse(t *testing.T) {
	a := Opaque{Type: "widget", Data: 1}
	b := Opaque{Type: "widget", Data: 1}
	if a.Equal(b) {
		t.Fatal("expected an Opaque with no EqualFn to never compare equal")
	}
}

func TestOpaqueField(t *testing.T) {
	o := Opaque{
		Type: "widget",
		FieldFn: func(name string) (Value, bool) {
			if name == "size" {
				return Int(3), true
			}
			return nil, false
		},
	}
	v, ok := o.Field("size")
	if !ok || v.(Int) != 3 {
		t.Fatalf("o.Field(size) = %#v, %v, want 3, true", v, ok)
	}
	if _, ok := o.Field("missing"); ok {
		t.Fatal("expected missing field to report not found")
	}
	noField := Opaque{Type: "widget"}
	if _, ok := noField.Field("anything"); ok {
		t.Fatal("expected an Opaque with no FieldFn to report every field absent")
	}
}

func TestOpaqueToJSON(t *testing.T) {
	o := Opaque{
		Type: "widget",
		JSONFn: func() (interface{}, error) {
			return map[string]interface{}{"size": 3}, nil
		},
	}
	raw, err := o.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	m := raw.(map[string]interface{})
	if m["size"] != 3 {
		t.Fatalf("ToJSON() = %#v, want size=3", raw)
	}

	noJSON := Opaque{Type: "widget"}
	if _, err := noJSON.ToJSON(); err == nil {
		t.Fatal("expected an Opaque with no JSONFn to report a conversion error")
	}
}
