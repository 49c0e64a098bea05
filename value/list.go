package value

// List is CEL's ordered finite sequence, grounded on common/types/list.go.
// Unlike the teacher's reflect-driven baseList (needed there to bridge
// native Go slices of arbitrary element type), this is a plain []Value: the
// value universe is already closed over Value, so no reflection is needed.
type List []Value

func NewList(elems []Value) List {
	out := make(List, len(elems))
	copy(out, elems)
	return out
}

func (l List) Kind() Kind       { return KindList }
func (l List) TypeName() string { return "list" }

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Get implements Indexer. Only non-negative Int keys are accepted; a UInt
// key is deliberately rejected as NoSuchOverload per spec §4.4.2 (no
// coercion), and any other key type (e.g. a String key, list["a"]) is
// likewise a type error rather than an index.
func (l List) Get(key Value) Value {
	idx, ok := key.(Int)
	if !ok {
		return NewErrf(NoSuchOverload, "unsupported index type %q for list", key.TypeName())
	}
	if idx < 0 || int(idx) >= len(l) {
		return NewErrf(IndexOutOfBounds, "index %d out of range [0, %d)", idx, len(l))
	}
	return l[idx]
}

func (l List) Size() int { return len(l) }

func (l List) Contains(elem Value) bool {
	for _, v := range l {
		if v.Equal(elem) {
			return true
		}
	}
	return false
}

// Add concatenates two lists into a new List, per spec §4.1.
func (l List) Add(other Value) Value {
	o, ok := other.(List)
	if !ok {
		return unsupported("add", l, other)
	}
	out := make(List, 0, len(l)+len(o))
	out = append(out, l...)
	out = append(out, o...)
	return out
}

func (l List) Iterator() Iterator {
	return &listIterator{list: l}
}

type listIterator struct {
	list List
	pos  int
}

func (it *listIterator) HasNext() bool { return it.pos < len(it.list) }
func (it *listIterator) Next() Value {
	v := it.list[it.pos]
	it.pos++
	return v
}
