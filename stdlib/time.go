package stdlib

import (
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

// registerTime wires the duration and timestamp accessor methods (spec §4.7
// plus SPEC_FULL Supplemented Features item 3's timezone-aware timestamp
// getters), gated behind the time feature the same way the teacher gates
// optional chaining behind its own capability flags in checker/env.go.
func registerTime(ctx *celcontext.Context, features interpreter.FeatureSet) {
	if !features.Time {
		return
	}

	ctx.AddFunction("getHours", timeGetter(
		func(d value.Duration) value.Value { return d.GetHours() },
		func(t value.Timestamp, tz string) value.Value { return t.GetHours(tz) },
	))
	ctx.AddFunction("getMinutes", timeGetter(
		func(d value.Duration) value.Value { return d.GetMinutes() },
		func(t value.Timestamp, tz string) value.Value { return t.GetMinutes(tz) },
	))
	ctx.AddFunction("getSeconds", timeGetter(
		func(d value.Duration) value.Value { return d.GetSeconds() },
		func(t value.Timestamp, tz string) value.Value { return t.GetSeconds(tz) },
	))
	ctx.AddFunction("getMilliseconds", timeGetter(
		func(d value.Duration) value.Value { return d.GetMilliseconds() },
		func(t value.Timestamp, tz string) value.Value { return t.GetMilliseconds(tz) },
	))

	ctx.AddFunction("getDate", timestampGetter(func(t value.Timestamp, tz string) value.Value { return t.GetDate(tz) }))
	ctx.AddFunction("getDayOfWeek", timestampGetter(func(t value.Timestamp, tz string) value.Value { return t.GetDayOfWeek(tz) }))
	ctx.AddFunction("getMonth", timestampGetter(func(t value.Timestamp, tz string) value.Value { return t.GetMonth(tz) }))
	ctx.AddFunction("getFullYear", timestampGetter(func(t value.Timestamp, tz string) value.Value { return t.GetFullYear(tz) }))
}

// timeGetter builds a member function accepting either a Duration receiver
// (no timezone argument) or a Timestamp receiver (optional timezone
// argument), matching the overload set spec §4.7 lists for getHours/
// getMinutes/getSeconds/getMilliseconds.
func timeGetter(onDuration func(value.Duration) value.Value, onTimestamp func(value.Timestamp, string) value.Value) *celcontext.Function {
	return &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) < 1 || len(args) > 2 {
				return value.NewErrf(value.InvalidArgument, "time accessor requires a receiver and optional timezone")
			}
			tz := ""
			if len(args) == 2 {
				s, ok := args[1].(value.String)
				if !ok {
					return noSuchOverload("time accessor", args[0], args[1])
				}
				tz = string(s)
			}
			switch r := args[0].(type) {
			case value.Duration:
				if tz != "" {
					return value.NewErrf(value.InvalidArgument, "duration accessors take no timezone")
				}
				return onDuration(r)
			case value.Timestamp:
				return onTimestamp(r, tz)
			}
			return value.NewErrf(value.NoSuchOverload, "time accessor unsupported for type %s", args[0].TypeName())
		},
	}
}

func timestampGetter(fn func(value.Timestamp, string) value.Value) *celcontext.Function {
	return &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) < 1 || len(args) > 2 {
				return value.NewErrf(value.InvalidArgument, "time accessor requires a receiver and optional timezone")
			}
			t, ok := args[0].(value.Timestamp)
			if !ok {
				return value.NewErrf(value.NoSuchOverload, "time accessor unsupported for type %s", args[0].TypeName())
			}
			tz := ""
			if len(args) == 2 {
				s, ok := args[1].(value.String)
				if !ok {
					return noSuchOverload("time accessor", args[0], args[1])
				}
				tz = string(s)
			}
			return fn(t, tz)
		},
	}
}
