// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type postSummary struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func TestTypedCache_SetGet(t *testing.T) {
	c := NewTypedCache[postSummary](NewSimpleMemoryCache(time.Hour), time.Minute)
	ctx := context.Background()

	in := postSummary{Slug: "a", Title: "A", Tags: []string{"go"}}
	if err := c.Set(ctx, "a", in); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := c.Get(ctx, "a")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Slug != "a" || got.Title != "A" || len(got.Tags) != 1 {
		t.Errorf("Get = %+v", got)
	}

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss for unknown key")
	}

	_ = c.Delete(ctx, "a")
	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("expected miss after delete")
	}
}

func TestTypedCache_CorruptEntryIsMiss(t *testing.T) {
	raw := NewSimpleMemoryCache(time.Hour)
	c := NewTypedCache[postSummary](raw, time.Minute)
	ctx := context.Background()

	_ = raw.Set(ctx, "bad", []byte("{not json"), 0)
	if got, ok := c.Get(ctx, "bad"); ok || got.Slug != "" {
		t.Errorf("Get = %+v, %v; want zero, false", got, ok)
	}
}

func TestTypedCache_GetOrSet(t *testing.T) {
	c := NewTypedCache[int](NewSimpleMemoryCache(time.Hour), time.Minute)
	ctx := context.Background()

	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	v, hit, err := c.GetOrSet(ctx, "answer", compute)
	if err != nil || v != 42 || hit {
		t.Fatalf("first GetOrSet = %d, %v, %v", v, hit, err)
	}
	v, hit, err = c.GetOrSet(ctx, "answer", compute)
	if err != nil || v != 42 || !hit {
		t.Fatalf("second GetOrSet = %d, %v, %v", v, hit, err)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := c.GetOrSet(ctx, "fails", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrSet error = %v, want boom", err)
	}
	if _, ok := c.Get(ctx, "fails"); ok {
		t.Error("failed computation must not be cached")
	}
}
