package stdlib

import (
	"testing"
	"time"

	"github.com/cel-core/cel/value"
)

func TestRegisterTimeDurationAccessors(t *testing.T) {
	ctx := newTestContext()
	d := value.Duration(90 * time.Minute)

	if got := dispatch(t, ctx, "getHours", d); got.(value.Int) != 1 {
		t.Fatalf("getHours(90m) = %v, want 1", got)
	}
	if got := dispatch(t, ctx, "getMinutes", d); got.(value.Int) != 90 {
		t.Fatalf("getMinutes(90m) = %v, want 90", got)
	}
}

func TestRegisterTimeTimestampAccessors(t *testing.T) {
	ctx := newTestContext()
	ts := value.NewTimestamp(time.Date(2026, time.July, 29, 15, 4, 5, 0, time.UTC))

	if got := dispatch(t, ctx, "getFullYear", ts); got.(value.Int) != 2026 {
		t.Fatalf("getFullYear = %v, want 2026", got)
	}
	if got := dispatch(t, ctx, "getMonth", ts); got.(value.Int) != 6 {
		t.Fatalf("getMonth = %v, want 6 (0-based July)", got)
	}
	if got := dispatch(t, ctx, "getHours", ts); got.(value.Int) != 15 {
		t.Fatalf("getHours = %v, want 15", got)
	}
}

func TestRegisterTimeGatedByFeature(t *testing.T) {
	ctx := celcontextNewTestContext(t, false)
	_, ok := ctx.Dispatch("getHours", []value.Value{value.Duration(time.Hour)})
	if ok {
		t.Fatal("getHours should not be registered when the time feature is disabled")
	}
}
