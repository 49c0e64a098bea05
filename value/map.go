package value

// Map is CEL's key-value mapping, grounded on common/types/map.go. Keys are
// restricted to Int, UInt, Bool or String (spec §3.1); mixed key types are
// permitted within one map. Iteration order is insertion order: the spec
// leaves map iteration order unspecified (see DESIGN.md Open Question), and
// insertion order gives deterministic, test-friendly behaviour the way a
// small ordered-slice-backed map naturally would.
type Map struct {
	keys   []Value
	values []Value
}

// NewMap builds a Map from parallel key/value slices, rejecting any key
// outside the four permitted key types (this also subsumes the "NaN keys
// are rejected at insertion time" invariant of spec §3.2, since Double is
// never a legal map key to begin with). Later duplicate keys overwrite
// earlier ones, matching CEL map-literal semantics.
func NewMap(keys, values []Value) (Map, *Err) {
	m := Map{}
	for i, k := range keys {
		if !isValidMapKey(k) {
			return Map{}, NewErrf(InvalidArgument, "invalid map key type %q", k.TypeName())
		}
		m.put(k, values[i])
	}
	return m, nil
}

func isValidMapKey(k Value) bool {
	switch k.(type) {
	case Int, Uint, Bool, String:
		return true
	}
	return false
}

func (m *Map) put(k, v Value) {
	for i, ek := range m.keys {
		if ek.Equal(k) && sameKeyKind(ek, k) {
			m.values[i] = v
			return
		}
	}
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

// sameKeyKind requires identical Go kind for map-key identity purposes:
// CEL map keys of different numeric types are distinct entries even where
// Int(1) and Uint(1) would be Equal as values, because a map literal
// {1: "a", 1u: "b"} is legal CEL with two entries. Lookup (Get), by
// contrast, uses cross-type numeric equality per spec §4.4.2.
func sameKeyKind(a, b Value) bool {
	return a.Kind() == b.Kind()
}

func (m Map) Kind() Kind       { return KindMap }
func (m Map) TypeName() string { return "map" }

func (m Map) Equal(other Value) bool {
	o, ok := other.(Map)
	if !ok || len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		ov, found := o.get(k)
		if !found || !m.values[i].Equal(ov) {
			return false
		}
	}
	return true
}

func (m Map) get(key Value) (Value, bool) {
	for i, k := range m.keys {
		if k.Equal(key) {
			return m.values[i], true
		}
	}
	return nil, false
}

// hasNumericKey reports whether the map contains at least one Int or Uint
// key, used to distinguish the NoSuchKey/NoSuchOverload boundary below.
func (m Map) hasNumericKey() bool {
	for _, k := range m.keys {
		switch k.(type) {
		case Int, Uint:
			return true
		}
	}
	return false
}

// Get implements Indexer following spec §4.4.2: the key type must be one of
// the four legal map-key types, and lookup uses the cross-type numeric
// equality rule of §3.4. A key of a type that is categorically incomparable
// with every key actually present (e.g. a numeric key probed against an
// all-string-keyed map) is NoSuchOverload rather than NoSuchKey, matching
// the "Map key strictness" testable property in spec §8.
func (m Map) Get(key Value) Value {
	if !isValidMapKey(key) {
		return NewErrf(NoSuchOverload, "unsupported map key type %q", key.TypeName())
	}
	if v, found := m.get(key); found {
		return v
	}
	switch key.(type) {
	case Int, Uint:
		if !m.hasNumericKey() {
			return NewErrf(NoSuchOverload, "no numeric keys present for key type %q", key.TypeName())
		}
	default:
		sameType := false
		for _, k := range m.keys {
			if k.Kind() == key.Kind() {
				sameType = true
				break
			}
		}
		if !sameType {
			return NewErrf(NoSuchOverload, "no keys of type %q present", key.TypeName())
		}
	}
	return NewErrf(NoSuchKey, "key not found: %s", DebugString(key))
}

// Field implements Fielder for string-keyed access via Select (spec §4.4.1)
// and has() (spec §4.4.4).
func (m Map) Field(name string) (Value, bool) {
	return m.get(String(name))
}

func (m Map) Size() int { return len(m.keys) }

func (m Map) Contains(elem Value) bool {
	_, found := m.get(elem)
	return found
}

func (m Map) Iterator() Iterator {
	return &mapIterator{keys: m.keys}
}

// Entries exposes the ordered key/value pairs for the comprehension engine
// and standard library (e.g. building a JSON object).
func (m Map) Entries() ([]Value, []Value) {
	return m.keys, m.values
}

type mapIterator struct {
	keys []Value
	pos  int
}

func (it *mapIterator) HasNext() bool { return it.pos < len(it.keys) }
func (it *mapIterator) Next() Value {
	k := it.keys[it.pos]
	it.pos++
	return k
}
