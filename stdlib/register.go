package stdlib

import (
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
)

// Register installs the full standard library onto ctx, gated by features,
// grounded on the teacher's StandardBuiltins() one-shot registration call in
// interpreter/functions/standard.go. Hosts that want a bare context (no
// built-ins at all) simply skip calling Register and add their own
// functions directly.
func Register(ctx *celcontext.Context, features interpreter.FeatureSet) {
	registerArith(ctx)
	registerCompare(ctx)
	registerContainer(ctx, features)
	registerConvert(ctx, features)
	registerTime(ctx, features)
	registerOptional(ctx)
	registerJSON(ctx, features)
}
