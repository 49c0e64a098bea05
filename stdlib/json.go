package stdlib

import (
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/value"
)

// registerJSON wires toJson(), the sole built-in gated on the `json`
// feature (spec §6.3: "enables JSON projection of values and Opaque
// types"). It projects the receiver via value.ToJSON into a
// *structpb.Value and renders it with protojson, returning the result as a
// String; List/Map/Optional/JSONProjector (Opaque) all recurse through
// value.ToJSON (a Dynamic value has no projection and is a ConversionError)
// the same way ConvertToNative's
// jsonValueType branch does in every common/types/*.go file in the teacher.
func registerJSON(ctx *celcontext.Context, features interpreter.FeatureSet) {
	ctx.AddFunction("toJson", &celcontext.Function{
		Call: func(args []value.Value) value.Value {
			if !features.JSON {
				return value.NewErrf(value.NoSuchOverload, "toJson() requires the json feature")
			}
			if len(args) != 1 {
				return value.NewErrf(value.InvalidArgument, "toJson() takes exactly one argument")
			}
			jv, err := value.ToJSON(args[0])
			if err != nil {
				return value.NewErrf(value.ConversionError, "toJson(): %v", err)
			}
			out, marshalErr := protojson.Marshal(jv)
			if marshalErr != nil {
				return value.NewErrf(value.ConversionError, "toJson(): %v", marshalErr)
			}
			return value.String(out)
		},
	})
}
