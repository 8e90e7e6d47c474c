package model

import (
	"testing"
	"time"
)

func TestPost_LastModified(t *testing.T) {
	published := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	p := Post{Slug: "hello", PublishedAt: published}
	if got := p.LastModified(); !got.Equal(published) {
		t.Errorf("LastModified() = %v, want %v", got, published)
	}

	p.UpdatedAt = updated
	if got := p.LastModified(); !got.Equal(updated) {
		t.Errorf("LastModified() = %v, want %v", got, updated)
	}
}

func TestPost_URL(t *testing.T) {
	p := Post{Slug: "building-a-cache"}
	if got := p.URL(); got != "/blog/building-a-cache" {
		t.Errorf("URL() = %q, want %q", got, "/blog/building-a-cache")
	}
}

func TestPost_IsDraft(t *testing.T) {
	if (&Post{Draft: true}).IsDraft() != true {
		t.Error("expected draft post to report IsDraft")
	}
	if (&Post{}).IsDraft() != false {
		t.Error("expected non-draft post to not report IsDraft")
	}
}
