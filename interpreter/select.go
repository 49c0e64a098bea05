package interpreter

import (
	"github.com/cel-core/cel/celast"
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/value"
)

// evalSelect implements spec §4.4.1 (plain select) and §4.4.3 (optional
// select `e.?f`), grounded on interpreter/attributes.go's field-resolution
// walk in the teacher.
func (it *Interpreter) evalSelect(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	operand := it.eval(node.Operand, ctx, st)
	if value.IsError(operand) {
		return operand
	}
	if node.Optional {
		return evalOptionalSelect(operand, node.Field)
	}
	if opt, ok := operand.(value.Optional); ok {
		// A plain (non-optional-syntax) select on an actual Optional value
		// behaves like selecting through to the payload when present, and
		// surfaces the absence as NoSuchField otherwise — CEL never lets a
		// bare `.` silently swallow `none` the way `.?` does.
		if !bool(opt.HasValue()) {
			return value.NewErrf(value.NoSuchField, "select on optional.none")
		}
		operand = opt.Value_()
	}
	v, fieldErr := selectField(operand, node.Field)
	if fieldErr != nil {
		return fieldErr
	}
	return v
}

// selectField resolves field against operand following spec §4.4.1:
// Map -> key lookup (NoSuchKey if absent); Fielder (Dynamic/Opaque) ->
// Field(); anything else (including String) -> NoSuchField.
func selectField(operand value.Value, field string) (value.Value, *value.Err) {
	switch t := operand.(type) {
	case value.Map:
		v, found := t.Field(field)
		if !found {
			return nil, value.NewErrf(value.NoSuchKey, "no such key: %s", field)
		}
		return v, nil
	case value.Fielder:
		v, found := t.Field(field)
		if !found {
			return nil, value.NewErrf(value.NoSuchField, "no such field: %s", field)
		}
		return v, nil
	default:
		return nil, value.NewErrf(value.NoSuchField, "no such field: %s on type %s", field, operand.TypeName())
	}
}

func evalOptionalSelect(operand value.Value, field string) value.Value {
	if opt, ok := operand.(value.Optional); ok {
		if !bool(opt.HasValue()) {
			return value.OptionalNone
		}
		operand = opt.Value_()
	}
	v, err := selectField(operand, field)
	if err != nil {
		return value.OptionalNone
	}
	return value.OptionalOf(v)
}

// evalIndex implements spec §4.4.2 (plain index) and §4.4.3 (optional index
// `e[?k]`).
func (it *Interpreter) evalIndex(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	operand := it.eval(node.Operand, ctx, st)
	if value.IsError(operand) {
		return operand
	}
	key := it.eval(node.IndexKey, ctx, st)
	if value.IsError(key) {
		return key
	}
	if node.Optional {
		return evalOptionalIndex(operand, key)
	}
	if opt, ok := operand.(value.Optional); ok {
		if !bool(opt.HasValue()) {
			return value.NewErrf(value.NoSuchKey, "index on optional.none")
		}
		operand = opt.Value_()
	}
	idx, ok := operand.(value.Indexer)
	if !ok {
		return value.NewErrf(value.NoSuchOverload, "unsupported index into type %s", operand.TypeName())
	}
	return idx.Get(key)
}

func evalOptionalIndex(operand, key value.Value) value.Value {
	if opt, ok := operand.(value.Optional); ok {
		if !bool(opt.HasValue()) {
			return value.OptionalNone
		}
		operand = opt.Value_()
	}
	idx, ok := operand.(value.Indexer)
	if !ok {
		return value.OptionalNone
	}
	v := idx.Get(key)
	if value.IsError(v) {
		return value.OptionalNone
	}
	return value.OptionalOf(v)
}

// evalHas implements the has(e.f) macro (spec §4.4.4). The parser is
// expected to rewrite `has(e.f)` into Call(nil, "has", [Select(e, f, _)]);
// this module's celast package has no parser to do that rewrite, so
// celast.NewCall(id, nil, "has", selectNode) is how a caller (or a future
// parser integration) constructs it directly.
func (it *Interpreter) evalHas(node *celast.Expr, ctx *celcontext.Context, st *evalState) value.Value {
	if len(node.Args) != 1 || node.Args[0].Kind != celast.KindSelect {
		return value.NewErrf(value.InvalidArgument, "has() requires a single field-select argument")
	}
	sel := node.Args[0]
	operand := it.eval(sel.Operand, ctx, st)
	if value.IsError(operand) {
		return operand // has(e.f) propagates an error in e, per spec §4.4.4.
	}
	if opt, ok := operand.(value.Optional); ok {
		if !bool(opt.HasValue()) {
			return value.False
		}
		operand = opt.Value_()
	}
	switch t := operand.(type) {
	case value.Map:
		_, found := t.Field(sel.Field)
		return value.Bool(found)
	case value.Fielder:
		_, found := t.Field(sel.Field)
		return value.Bool(found)
	default:
		// Non-container scalar: has() is false by definition, not an error
		// (spec §4.4.4: "this is deliberate and differs from NoSuchField").
		return value.False
	}
}
