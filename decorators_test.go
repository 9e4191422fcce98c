package localeurl

import (
	"context"
	"testing"
)

func TestResolveHookOrderAndRewrite(t *testing.T) {
	var order []string

	first := ResolveHookFuncs{
		Before: func(*ResolveHookContext) { order = append(order, "first-before") },
		After:  func(*ResolveHookContext) { order = append(order, "first-after") },
	}
	second := ResolveHookFuncs{
		Before: func(*ResolveHookContext) { order = append(order, "second-before") },
		After: func(ctx *ResolveHookContext) {
			order = append(order, "second-after")
			ctx.Result.URL = "/rewritten"
		},
	}

	mapper := testMapper(t, nil, nil, WithMapperHooks(first, second))

	got := mapper.MapURLToLocale(context.Background(), "/en/uk/about", "de", "ch")
	if got.URL != "/rewritten" {
		t.Fatalf("hooks did not rewrite result: %+v", got)
	}

	want := []string{"first-before", "second-before", "first-after", "second-after"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestFilterResolveHooksDropsNil(t *testing.T) {
	if got := filterResolveHooks(nil); got != nil {
		t.Fatalf("filterResolveHooks(nil) = %v", got)
	}
	if got := filterResolveHooks([]ResolveHook{nil, nil}); got != nil {
		t.Fatalf("all-nil hooks = %v", got)
	}

	hook := ResolveHookFuncs{}
	filtered := filterResolveHooks([]ResolveHook{nil, hook, nil})
	if len(filtered) != 1 {
		t.Fatalf("filtered = %v", filtered)
	}
}

func TestResolveHookContextMetadata(t *testing.T) {
	ctx := &ResolveHookContext{}

	if _, ok := ctx.MetadataValue("missing"); ok {
		t.Fatal("unexpected metadata hit")
	}

	ctx.SetMetadata("ladder", string(SourcePrefix))
	value, ok := ctx.MetadataValue("ladder")
	if !ok || value != string(SourcePrefix) {
		t.Fatalf("MetadataValue = %v, ok=%v", value, ok)
	}

	ctx.SetMetadata("", "ignored")
	if _, ok := ctx.MetadataValue(""); ok {
		t.Fatal("empty keys must be ignored")
	}

	var nilCtx *ResolveHookContext
	nilCtx.SetMetadata("x", 1)
	if _, ok := nilCtx.MetadataValue("x"); ok {
		t.Fatal("nil context must be inert")
	}
}
