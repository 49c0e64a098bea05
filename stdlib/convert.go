package stdlib

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

// registerConvert wires the type-conversion built-ins of spec §4.7: int,
// uint, double, string, bytes, bool, duration, timestamp, type, plus dyn()
// (SPEC_FULL Supplemented Features item 2: a no-op identity conversion the
// teacher also registers).
func registerConvert(ctx *celcontext.Context, features interpreter.FeatureSet) {
	ctx.AddFunction("int", unary(convertInt))
	ctx.AddFunction("uint", unary(convertUint))
	ctx.AddFunction("double", unary(convertDouble))
	ctx.AddFunction("string", unary(convertString))
	ctx.AddFunction("bytes", unary(convertBytes))
	ctx.AddFunction("bool", unary(convertBool))
	ctx.AddFunction("type", unary(func(v value.Value) value.Value { return value.TypeOf(v) }))
	ctx.AddFunction("dyn", unary(func(v value.Value) value.Value { return v }))

	if features.Time {
		ctx.AddFunction("duration", unary(convertDuration))
		ctx.AddFunction("timestamp", unary(convertTimestamp))
	}

	registerMinMax(ctx)
}

func unary(fn func(value.Value) value.Value) *celcontext.Function {
	return &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) != 1 {
				return value.NewErrf(value.InvalidArgument, "conversion requires exactly one argument")
			}
			return fn(args[0])
		},
	}
}

func convertInt(v value.Value) value.Value {
	switch t := v.(type) {
	case value.Int:
		return t
	case value.Uint:
		if t > value.Uint(1<<63-1) {
			return value.NewErrf(value.ConversionError, "uint %d out of int64 range", t)
		}
		return value.Int(t)
	case value.Double:
		if t < -9223372036854775808 || t >= 9223372036854775808 {
			return value.NewErrf(value.ConversionError, "double %v out of int64 range", t)
		}
		return value.Int(int64(t))
	case value.String:
		n, err := strconv.ParseInt(string(t), 10, 64)
		if err != nil {
			return value.NewErrf(value.ConversionError, "cannot convert %q to int: %v", t, err)
		}
		return value.Int(n)
	}
	return value.NewErrf(value.ConversionError, "cannot convert %s to int", v.TypeName())
}

func convertUint(v value.Value) value.Value {
	switch t := v.(type) {
	case value.Uint:
		return t
	case value.Int:
		if t < 0 {
			return value.NewErrf(value.ConversionError, "negative int %d cannot convert to uint", t)
		}
		return value.Uint(t)
	case value.Double:
		if t < 0 {
			return value.NewErrf(value.ConversionError, "negative double %v cannot convert to uint", t)
		}
		return value.Uint(uint64(t))
	case value.String:
		n, err := strconv.ParseUint(string(t), 10, 64)
		if err != nil {
			return value.NewErrf(value.ConversionError, "cannot convert %q to uint: %v", t, err)
		}
		return value.Uint(n)
	}
	return value.NewErrf(value.ConversionError, "cannot convert %s to uint", v.TypeName())
}

func convertDouble(v value.Value) value.Value {
	switch t := v.(type) {
	case value.Double:
		return t
	case value.Int:
		return value.Double(t)
	case value.Uint:
		return value.Double(t)
	case value.String:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return value.NewErrf(value.ConversionError, "cannot convert %q to double: %v", t, err)
		}
		return value.Double(f)
	}
	return value.NewErrf(value.ConversionError, "cannot convert %s to double", v.TypeName())
}

func convertString(v value.Value) value.Value {
	switch t := v.(type) {
	case value.String:
		return t
	case value.Int:
		return t.ConvertToString()
	case value.Uint:
		return t.ConvertToString()
	case value.Double:
		return t.ConvertToString()
	case value.Bool:
		return value.String(fmt.Sprintf("%t", bool(t)))
	case value.Bytes:
		return value.String(string(t))
	case value.Duration:
		return value.String(t.String())
	case value.Timestamp:
		return value.String(t.String())
	case value.Null:
		return value.String("null")
	}
	return value.NewErrf(value.ConversionError, "cannot convert %s to string", v.TypeName())
}

func convertBytes(v value.Value) value.Value {
	switch t := v.(type) {
	case value.Bytes:
		return t
	case value.String:
		return value.Bytes([]byte(t))
	}
	return value.NewErrf(value.ConversionError, "cannot convert %s to bytes", v.TypeName())
}

func convertBool(v value.Value) value.Value {
	switch t := v.(type) {
	case value.Bool:
		return t
	case value.String:
		switch t {
		case "true", "True", "TRUE", "1":
			return value.True
		case "false", "False", "FALSE", "0":
			return value.False
		}
		return value.NewErrf(value.ConversionError, "cannot convert %q to bool", t)
	}
	return value.NewErrf(value.ConversionError, "cannot convert %s to bool", v.TypeName())
}

func convertDuration(v value.Value) value.Value {
	s, ok := v.(value.String)
	if !ok {
		return value.NewErrf(value.ConversionError, "duration() requires a string argument, got %s", v.TypeName())
	}
	d, err := time.ParseDuration(string(s))
	if err != nil {
		return value.NewErrf(value.ConversionError, "invalid duration %q: %v", s, err)
	}
	return value.Duration(d)
}

func convertTimestamp(v value.Value) value.Value {
	s, ok := v.(value.String)
	if !ok {
		return value.NewErrf(value.ConversionError, "timestamp() requires a string argument, got %s", v.TypeName())
	}
	t, err := time.Parse(time.RFC3339Nano, string(s))
	if err != nil {
		return value.NewErrf(value.ConversionError, "invalid timestamp %q: %v", s, err)
	}
	return value.NewTimestamp(t)
}

func registerMinMax(ctx *celcontext.Context) {
	ctx.AddFunction("max", variadicNumeric(func(best, cand value.Value) (value.Value, bool) {
		c, ok := best.(value.Comparer)
		if !ok {
			return nil, false
		}
		cmp, ok := c.Compare(cand)
		if !ok {
			return nil, false
		}
		if cmp < 0 {
			return cand, true
		}
		return best, true
	}))
	ctx.AddFunction("min", variadicNumeric(func(best, cand value.Value) (value.Value, bool) {
		c, ok := best.(value.Comparer)
		if !ok {
			return nil, false
		}
		cmp, ok := c.Compare(cand)
		if !ok {
			return nil, false
		}
		if cmp > 0 {
			return cand, true
		}
		return best, true
	}))
}

func variadicNumeric(pick func(best, cand value.Value) (value.Value, bool)) *celcontext.Function {
	return &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if len(args) == 0 {
				return value.NewErrf(value.InvalidArgument, "max/min require at least one argument")
			}
			best := args[0]
			for _, cand := range args[1:] {
				next, ok := pick(best, cand)
				if !ok {
					return noSuchOverload("max/min", best, cand)
				}
				best = next
			}
			return best
		},
	}
}
