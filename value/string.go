package value

import (
	"strings"
	"unicode/utf8"
)

// String is CEL's immutable UTF-8 text value, grounded on
// common/types/string.go. Size counts Unicode code points, matching the
// teacher's size() implementation (utf8.RuneCountInString), not bytes.
type String string

func (s String) Kind() Kind       { return KindString }
func (s String) TypeName() string { return "string" }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

func (s String) Compare(other Value) (int, bool) {
	o, ok := other.(String)
	if !ok {
		return 0, false
	}
	return strings.Compare(string(s), string(o)), true
}

func (s String) Add(other Value) Value {
	o, ok := other.(String)
	if !ok {
		return unsupported("add", s, other)
	}
	return s + o
}

func (s String) Size() int {
	return utf8.RuneCountInString(string(s))
}

func (s String) Contains(elem Value) bool {
	o, ok := elem.(String)
	if !ok {
		return false
	}
	return strings.Contains(string(s), string(o))
}

func (s String) StartsWith(prefix String) Bool {
	return Bool(strings.HasPrefix(string(s), string(prefix)))
}

func (s String) EndsWith(suffix String) Bool {
	return Bool(strings.HasSuffix(string(s), string(suffix)))
}

func (s String) String() string {
	return string(s)
}
