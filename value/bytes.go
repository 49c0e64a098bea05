package value

import "bytes"

// Bytes is CEL's immutable byte-sequence value, grounded on
// common/types/bytes.go.
type Bytes []byte

func (b Bytes) Kind() Kind       { return KindBytes }
func (b Bytes) TypeName() string { return "bytes" }

func (b Bytes) Equal(other Value) bool {
	o, ok := other.(Bytes)
	return ok && bytes.Equal(b, o)
}

func (b Bytes) Compare(other Value) (int, bool) {
	o, ok := other.(Bytes)
	if !ok {
		return 0, false
	}
	return bytes.Compare(b, o), true
}

func (b Bytes) Add(other Value) Value {
	o, ok := other.(Bytes)
	if !ok {
		return unsupported("add", b, other)
	}
	out := make(Bytes, 0, len(b)+len(o))
	out = append(out, b...)
	out = append(out, o...)
	return out
}

func (b Bytes) Size() int {
	return len(b)
}

func (b Bytes) Contains(elem Value) bool {
	o, ok := elem.(Bytes)
	if !ok {
		return false
	}
	return bytes.Contains(b, o)
}

func (b Bytes) String() string {
	return string(b)
}
