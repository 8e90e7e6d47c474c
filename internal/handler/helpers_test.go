// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kei-k23/portfolio/internal/cache"
	"github.com/kei-k23/portfolio/internal/model"
	"github.com/kei-k23/portfolio/internal/render"
	"github.com/kei-k23/portfolio/web"
)

// fakeStore is an in-memory PostStore and ContentState.
type fakeStore struct {
	posts    []model.Post
	loadedAt time.Time
}

func newFakeStore(posts ...model.Post) *fakeStore {
	return &fakeStore{posts: posts, loadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *fakeStore) Posts() []model.Post { return slices.Clone(s.posts) }

func (s *fakeStore) Post(slug string) (model.Post, bool) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return model.Post{}, false
}

func (s *fakeStore) Loaded() bool { return !s.loadedAt.IsZero() }
func (s *fakeStore) LoadedAt() time.Time { return s.loadedAt }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// testPosts returns, newest first: gamma-draft (draft), beta, delta, alpha.
func testPosts() []model.Post {
	return []model.Post{
		{Slug: "alpha", Title: "Alpha post", Body: "<p>alpha body</p>", ReadingTime: 1, PublishedAt: day("2024-01-01")},
		{Slug: "beta", Title: "Beta post", Body: "<p>Hello <strong>world</strong></p>", ReadingTime: 2, PublishedAt: day("2024-03-01"), Tags: []string{"go"}},
		{Slug: "gamma-draft", Title: "Gamma draft", Body: "<p>wip</p>", ReadingTime: 1, Draft: true, PublishedAt: day("2024-05-01")},
		{Slug: "delta", Title: "Delta post", Body: "<p>delta</p>", ReadingTime: 3, PublishedAt: day("2024-02-01")},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	r, err := render.New(render.Config{TemplatesFS: templates})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return r
}

func testConfig(production, blogEnabled bool) FrontendConfig {
	return FrontendConfig{
		IsProduction:     production,
		BlogEnabled:      blogEnabled,
		RecentPostsCount: 2,
		SiteURL:          "https://example.com",
	}
}

// newTestFrontend builds a handler with no page cache.
func newTestFrontend(t *testing.T, store PostStore, cfg FrontendConfig) *FrontendHandler {
	t.Helper()
	return NewFrontendHandler(testRenderer(t), store, nil, cfg, testLogger())
}

func newTestFrontendWithCache(t *testing.T, store PostStore, cfg FrontendConfig) (*FrontendHandler, *cache.PageCache) {
	t.Helper()

	mc := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = mc.Close() })

	pages := cache.NewPageCache(mc, time.Minute)
	return NewFrontendHandler(testRenderer(t), store, pages, cfg, testLogger()), pages
}

func newTestRouter(h *FrontendHandler) chi.Router {
	r := chi.NewRouter()
	r.NotFound(h.NotFound)
	RegisterFrontendRoutes(r, h)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}
