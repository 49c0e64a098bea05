package value

import "time"

// Duration is CEL's signed nanosecond-precision interval, grounded on
// common/types/duration.go. It may be negative.
type Duration time.Duration

func (d Duration) Kind() Kind       { return KindDuration }
func (d Duration) TypeName() string { return "google.protobuf.Duration" }

func (d Duration) Equal(other Value) bool {
	o, ok := other.(Duration)
	return ok && d == o
}

func (d Duration) Compare(other Value) (int, bool) {
	o, ok := other.(Duration)
	if !ok {
		return 0, false
	}
	return cmpInt64(int64(d), int64(o)), true
}

func (d Duration) Add(other Value) Value {
	switch o := other.(type) {
	case Duration:
		r, ok := addInt64Checked(int64(d), int64(o))
		if !ok {
			return NewErrf(Overflow, "duration overflow")
		}
		return Duration(r)
	case Timestamp:
		return o.Add(d)
	}
	return unsupported("add", d, other)
}

func (d Duration) Subtract(other Value) Value {
	o, ok := other.(Duration)
	if !ok {
		return unsupported("subtract", d, other)
	}
	r, ok := subtractInt64Checked(int64(d), int64(o))
	if !ok {
		return NewErrf(Overflow, "duration overflow")
	}
	return Duration(r)
}

func (d Duration) Negate() Value {
	r, ok := negateInt64Checked(int64(d))
	if !ok {
		return NewErrf(Overflow, "duration overflow negating")
	}
	return Duration(r)
}

func (d Duration) Go() time.Duration { return time.Duration(d) }

func (d Duration) String() string {
	return time.Duration(d).String()
}

// GetHours, GetMinutes, GetSeconds and GetMilliseconds implement the
// duration accessor built-ins of spec §4.7, each truncating toward zero.
func (d Duration) GetHours() Int        { return Int(time.Duration(d) / time.Hour) }
func (d Duration) GetMinutes() Int      { return Int(time.Duration(d) / time.Minute) }
func (d Duration) GetSeconds() Int      { return Int(time.Duration(d) / time.Second) }
func (d Duration) GetMilliseconds() Int { return Int(time.Duration(d) / time.Millisecond) }
