// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/kei-k23/portfolio/internal/metrics"
	"github.com/kei-k23/portfolio/internal/model"
)

// Store holds the most recent valid post snapshot read from a Source.
// A failed reload keeps serving the previous snapshot.
type Store struct {
	source Source
	logger *slog.Logger

	mu        sync.RWMutex
	posts     []model.Post
	bySlug    map[string]int
	loadedAt  time.Time
	listeners []func()
}

// NewStore creates a store backed by source. Call Load before serving.
func NewStore(source Source, logger *slog.Logger) *Store {
	return &Store{
		source: source,
		logger: logger,
		bySlug: make(map[string]int),
	}
}

// Load reads the initial snapshot.
func (s *Store) Load(ctx context.Context) error {
	return s.Reload(ctx)
}

// Reload re-reads the source and swaps in the new snapshot on success.
// Registered listeners are invoked after a successful swap.
func (s *Store) Reload(ctx context.Context) error {
	start := time.Now()

	posts, err := s.source.Posts(ctx)
	if err != nil {
		metrics.ContentReloadsTotal.WithLabelValues("error").Inc()
		s.logger.Warn("content reload failed, keeping previous snapshot",
			"category", "content", "error", err)
		return fmt.Errorf("loading posts: %w", err)
	}

	bySlug := make(map[string]int, len(posts))
	drafts := 0
	for i, p := range posts {
		bySlug[p.Slug] = i
		if p.Draft {
			drafts++
		}
	}

	s.mu.Lock()
	s.posts = posts
	s.bySlug = bySlug
	s.loadedAt = time.Now()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	metrics.ContentReloadsTotal.WithLabelValues("success").Inc()
	metrics.PostsLoaded.WithLabelValues("published").Set(float64(len(posts) - drafts))
	metrics.PostsLoaded.WithLabelValues("draft").Set(float64(drafts))

	s.logger.Info("content loaded",
		"posts", len(posts),
		"drafts", drafts,
		"duration", time.Since(start).Round(time.Microsecond),
	)

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// Posts returns a copy of the current snapshot.
func (s *Store) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.posts)
}

// Post looks up a post by slug.
func (s *Store) Post(slug string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.bySlug[slug]
	if !ok {
		return model.Post{}, false
	}
	return s.posts[i], true
}

// LoadedAt returns when the current snapshot was loaded, zero if never.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Loaded reports whether a snapshot is available.
func (s *Store) Loaded() bool {
	return !s.LoadedAt().IsZero()
}

// OnReload registers fn to run after every successful reload.
func (s *Store) OnReload(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
