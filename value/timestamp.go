package value

import "time"

// Timestamp is CEL's UTC-based instant with nanosecond precision, grounded
// on common/types/timestamp.go.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalizes t to UTC, matching the teacher's convention that
// timestamp values are always carried in UTC internally; timezone-aware
// accessors (getHours(tz) etc., see SPEC_FULL Supplemented Features) convert
// on demand.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

func (t Timestamp) Kind() Kind       { return KindTimestamp }
func (t Timestamp) TypeName() string { return "google.protobuf.Timestamp" }

func (t Timestamp) Equal(other Value) bool {
	o, ok := other.(Timestamp)
	return ok && t.Time.Equal(o.Time)
}

func (t Timestamp) Compare(other Value) (int, bool) {
	o, ok := other.(Timestamp)
	if !ok {
		return 0, false
	}
	switch {
	case t.Time.Before(o.Time):
		return -1, true
	case t.Time.After(o.Time):
		return 1, true
	default:
		return 0, true
	}
}

func (t Timestamp) Add(other Value) Value {
	o, ok := other.(Duration)
	if !ok {
		return unsupported("add", t, other)
	}
	return NewTimestamp(t.Time.Add(o.Go()))
}

func (t Timestamp) Subtract(other Value) Value {
	switch o := other.(type) {
	case Duration:
		return NewTimestamp(t.Time.Add(-o.Go()))
	case Timestamp:
		return Duration(t.Time.Sub(o.Time))
	}
	return unsupported("subtract", t, other)
}

func (t Timestamp) String() string {
	return t.Time.Format(time.RFC3339Nano)
}

func zoned(t Timestamp, tz string) (time.Time, *Err) {
	if tz == "" {
		return t.Time, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, NewErrf(InvalidArgument, "invalid timezone %q: %v", tz, err)
	}
	return t.Time.In(loc), nil
}

// GetHours, GetMinutes, GetSeconds, GetMilliseconds, GetDate, GetDayOfWeek,
// GetMonth and GetFullYear each take an
// optional IANA timezone name (empty string means UTC), per SPEC_FULL
// Supplemented Features item 3.
func (t Timestamp) GetHours(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(zt.Hour())
}

func (t Timestamp) GetMinutes(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(zt.Minute())
}

func (t Timestamp) GetSeconds(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(zt.Second())
}

func (t Timestamp) GetMilliseconds(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(zt.Nanosecond() / int(time.Millisecond))
}

func (t Timestamp) GetDate(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(zt.Day())
}

// GetDayOfWeek returns 0 (Sunday) through 6 (Saturday), matching the CEL
// spec's protobuf-derived convention rather than Go's time.Weekday offset
// (which happens to already line up: both are Sunday=0).
func (t Timestamp) GetDayOfWeek(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(int(zt.Weekday()))
}

func (t Timestamp) GetMonth(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(int(zt.Month()) - 1) // CEL months are 0-based.
}

func (t Timestamp) GetFullYear(tz string) Value {
	zt, err := zoned(t, tz)
	if err != nil {
		return err
	}
	return Int(zt.Year())
}
