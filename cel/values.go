package cel

import (
	"fmt"
	"time"

	"github.com/cel-core/cel/value"
)

// FromGo converts a native Go value into the dynamic Value universe (spec
// §6.2: "TryFrom conversions between the dynamic Value universe and host
// primitives"), grounded on the teacher's common/types.NativeToValue
// adapter, narrowed to the concrete Go types a host actually hands across
// this module's boundary (no reflection-driven proto/struct bridging, since
// there is no protobuf message provider in this module's scope).
func FromGo(v interface{}) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.NullValue, nil
	case value.Value:
		return t, nil
	case value.DynamicProvider:
		// A host type that answers field queries lazily is wrapped rather
		// than eagerly converted, per spec §4.1 DynamicType.
		return value.Dynamic{Provider: t}, nil
	case error:
		return value.Opaque{
			Type: "error",
			Data: t,
			EqualFn: func(a, b interface{}) bool {
				return a.(error).Error() == b.(error).Error()
			},
			JSONFn: func() (interface{}, error) {
				return t.Error(), nil
			},
		}, nil
	case int:
		return value.Int(t), nil
	case int64:
		return value.Int(t), nil
	case uint64:
		return value.Uint(t), nil
	case float64:
		return value.Double(t), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case []byte:
		return value.Bytes(t), nil
	case time.Duration:
		return value.Duration(t), nil
	case time.Time:
		return value.NewTimestamp(t), nil
	case []interface{}:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			cv, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			elems[i] = cv
		}
		return value.NewList(elems), nil
	case map[string]interface{}:
		keys := make([]value.Value, 0, len(t))
		values := make([]value.Value, 0, len(t))
		for k, e := range t {
			cv, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			keys = append(keys, value.String(k))
			values = append(values, cv)
		}
		m, err := value.NewMap(keys, values)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("cel: no conversion from Go type %T to a CEL value", v)
}

// ToGo converts a Value back into a native Go representation: the inverse
// of FromGo, for hosts that want plain Go types out of an evaluation result
// rather than matching on value.Value's concrete types directly.
func ToGo(v value.Value) (interface{}, error) {
	switch t := v.(type) {
	case value.Null:
		return nil, nil
	case value.Int:
		return int64(t), nil
	case value.Uint:
		return uint64(t), nil
	case value.Double:
		return float64(t), nil
	case value.Bool:
		return bool(t), nil
	case value.String:
		return string(t), nil
	case value.Bytes:
		return []byte(t), nil
	case value.Duration:
		return t.Go(), nil
	case value.Timestamp:
		return t.Time, nil
	case value.List:
		out := make([]interface{}, len(t))
		for i, e := range t {
			gv, err := ToGo(e)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case value.Map:
		keys, values := t.Entries()
		out := make(map[string]interface{}, len(keys))
		for i, k := range keys {
			ks, ok := k.(value.String)
			if !ok {
				return nil, fmt.Errorf("cel: ToGo only supports string-keyed maps, got key type %s", k.TypeName())
			}
			gv, err := ToGo(values[i])
			if err != nil {
				return nil, err
			}
			out[string(ks)] = gv
		}
		return out, nil
	case *value.Err:
		return nil, t
	case value.Dynamic:
		return ToGo(t.Materialize())
	case value.Opaque:
		return t.Data, nil
	}
	return nil, fmt.Errorf("cel: no conversion from CEL value of type %s to Go", v.TypeName())
}
