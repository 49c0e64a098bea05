package stdlib

import (
	"testing"

	"github.com/cel-core/cel/value"
)

func TestRegisterOptionalOfAndHasValue(t *testing.T) {
	ctx := newTestContext()

	opt := dispatch(t, ctx, "optional.of", value.Int(5))
	if got := dispatch(t, ctx, "hasValue", opt); got.(value.Bool) != true {
		t.Fatalf("hasValue(optional.of(5)) = %v, want true", got)
	}
	if got := dispatch(t, ctx, "value", opt); got.(value.Int) != 5 {
		t.Fatalf("value(optional.of(5)) = %v, want 5", got)
	}
}

func TestRegisterOptionalNoneValueErrors(t *testing.T) {
	ctx := newTestContext()

	none := dispatch(t, ctx, "optional.none")
	if got := dispatch(t, ctx, "hasValue", none); got.(value.Bool) != false {
		t.Fatalf("hasValue(optional.none()) = %v, want false", got)
	}
	got := dispatch(t, ctx, "value", none)
	if !value.IsError(got) {
		t.Fatalf("value(optional.none()) = %#v, want an error", got)
	}
}

func TestRegisterOptionalOfNonZeroValue(t *testing.T) {
	ctx := newTestContext()

	zero := dispatch(t, ctx, "optional.ofNonZeroValue", value.Int(0))
	if got := dispatch(t, ctx, "hasValue", zero); got.(value.Bool) != false {
		t.Fatalf("optional.ofNonZeroValue(0) should be absent, hasValue = %v", got)
	}

	nonzero := dispatch(t, ctx, "optional.ofNonZeroValue", value.Int(3))
	if got := dispatch(t, ctx, "hasValue", nonzero); got.(value.Bool) != true {
		t.Fatalf("optional.ofNonZeroValue(3) should be present, hasValue = %v", got)
	}
}

func TestRegisterOptionalOrAndOrValue(t *testing.T) {
	ctx := newTestContext()

	none := dispatch(t, ctx, "optional.none")
	some := dispatch(t, ctx, "optional.of", value.Int(9))

	got := dispatch(t, ctx, "or", none, some)
	if got2 := dispatch(t, ctx, "value", got); got2.(value.Int) != 9 {
		t.Fatalf("none.or(some) value = %v, want 9", got2)
	}

	if got := dispatch(t, ctx, "orValue", none, value.Int(42)); got.(value.Int) != 42 {
		t.Fatalf("none.orValue(42) = %v, want 42", got)
	}
}
