package value

import (
	structpb "github.com/golang/protobuf/ptypes/struct"
)

// ToJSON projects v into a *structpb.Value, gating the `json` feature of
// spec §6.3. This mirrors the ConvertToNative(reflect.TypeOf(&structpb.Value{}))
// branches present in every common/types/*.go file in the teacher (e.g.
// int.go's jsonValueType case), generalized into one free function instead
// of a per-type reflect.Type switch, since this module doesn't need the
// teacher's broader ConvertToNative(arbitrary reflect.Type) machinery.
func ToJSON(v Value) (*structpb.Value, error) {
	switch t := v.(type) {
	case Int:
		return numberValue(float64(t)), nil
	case Uint:
		return numberValue(float64(t)), nil
	case Double:
		return numberValue(float64(t)), nil
	case Bool:
		return &structpb.Value{Kind: &structpb.Value_BoolValue{BoolValue: bool(t)}}, nil
	case String:
		return &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: string(t)}}, nil
	case Null:
		return &structpb.Value{Kind: &structpb.Value_NullValue{}}, nil
	case List:
		vals := make([]*structpb.Value, len(t))
		for i, e := range t {
			jv, err := ToJSON(e)
			if err != nil {
				return nil, err
			}
			vals[i] = jv
		}
		return &structpb.Value{Kind: &structpb.Value_ListValue{
			ListValue: &structpb.ListValue{Values: vals},
		}}, nil
	case Map:
		fields := make(map[string]*structpb.Value, t.Size())
		keys, values := t.Entries()
		for i, k := range keys {
			ks, ok := k.(String)
			if !ok {
				return nil, NewErrf(ConversionError, "non-string map key %q cannot project to JSON", k.TypeName())
			}
			jv, err := ToJSON(values[i])
			if err != nil {
				return nil, err
			}
			fields[string(ks)] = jv
		}
		return &structpb.Value{Kind: &structpb.Value_StructValue{
			Struct: &structpb.Struct{Fields: fields},
		}}, nil
	case Optional:
		if !t.present {
			return &structpb.Value{Kind: &structpb.Value_NullValue{}}, nil
		}
		return ToJSON(t.value)
	case JSONProjector:
		raw, err := t.ToJSON()
		if err != nil {
			return nil, err
		}
		return nativeToJSONValue(raw)
	}
	return nil, NewErrf(ConversionError, "type %q has no JSON projection", v.TypeName())
}

func numberValue(f float64) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_NumberValue{NumberValue: f}}
}

// nativeToJSONValue adapts a raw Go value (as returned by an Opaque JSON
// projection hook) into a *structpb.Value.
func nativeToJSONValue(raw interface{}) (*structpb.Value, error) {
	switch t := raw.(type) {
	case nil:
		return &structpb.Value{Kind: &structpb.Value_NullValue{}}, nil
	case bool:
		return &structpb.Value{Kind: &structpb.Value_BoolValue{BoolValue: t}}, nil
	case string:
		return &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: t}}, nil
	case float64:
		return numberValue(t), nil
	case int:
		return numberValue(float64(t)), nil
	case int64:
		return numberValue(float64(t)), nil
	case map[string]interface{}:
		fields := make(map[string]*structpb.Value, len(t))
		for k, v := range t {
			jv, err := nativeToJSONValue(v)
			if err != nil {
				return nil, err
			}
			fields[k] = jv
		}
		return &structpb.Value{Kind: &structpb.Value_StructValue{Struct: &structpb.Struct{Fields: fields}}}, nil
	case []interface{}:
		vals := make([]*structpb.Value, len(t))
		for i, v := range t {
			jv, err := nativeToJSONValue(v)
			if err != nil {
				return nil, err
			}
			vals[i] = jv
		}
		return &structpb.Value{Kind: &structpb.Value_ListValue{ListValue: &structpb.ListValue{Values: vals}}}, nil
	}
	return nil, NewErrf(ConversionError, "unsupported native JSON projection type %T", raw)
}
