package stdlib

import (
	"testing"

	"github.com/cel-core/cel/value"
)

func TestRegisterContainerSize(t *testing.T) {
	ctx := newTestContext()
	list := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	got := dispatch(t, ctx, "size", list)
	if got.(value.Int) != 2 {
		t.Fatalf("size([1,2]) = %v, want 2", got)
	}
}

func TestRegisterContainerIn(t *testing.T) {
	ctx := newTestContext()
	list := value.NewList([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	got := dispatch(t, ctx, "@in", value.Int(2), list)
	if got.(value.Bool) != true {
		t.Fatalf("2 in [1,2,3] = %v, want true", got)
	}
	got = dispatch(t, ctx, "@in", value.Int(9), list)
	if got.(value.Bool) != false {
		t.Fatalf("9 in [1,2,3] = %v, want false", got)
	}
}

func TestRegisterContainerStringMembers(t *testing.T) {
	ctx := newTestContext()
	if got := dispatch(t, ctx, "contains", value.String("hello"), value.String("ell")); got.(value.Bool) != true {
		t.Fatalf("\"hello\".contains(\"ell\") = %v, want true", got)
	}
	if got := dispatch(t, ctx, "startsWith", value.String("hello"), value.String("he")); got.(value.Bool) != true {
		t.Fatalf("\"hello\".startsWith(\"he\") = %v, want true", got)
	}
	if got := dispatch(t, ctx, "endsWith", value.String("hello"), value.String("lo")); got.(value.Bool) != true {
		t.Fatalf("\"hello\".endsWith(\"lo\") = %v, want true", got)
	}
}

func TestRegisterContainerMatches(t *testing.T) {
	ctx := newTestContext()
	got := dispatch(t, ctx, "matches", value.String("hello123"), value.String(`\d+`))
	if got.(value.Bool) != true {
		t.Fatalf("matches = %v, want true", got)
	}

	got = dispatch(t, ctx, "matches", value.String("hello"), value.String(`\d+`))
	if got.(value.Bool) != false {
		t.Fatalf("matches = %v, want false", got)
	}
}

func TestRegisterContainerMatchesGatedByFeature(t *testing.T) {
	ctx := celcontextNewTestContext(t, false)
	got := dispatch(t, ctx, "matches", value.String("abc"), value.String("a.c"))
	e, ok := value.AsError(got)
	if !ok || e.Code != value.NoSuchOverload {
		t.Fatalf("matches with regex disabled = %#v, want NoSuchOverload", got)
	}
}
