// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package blog decides which posts a visitor sees and in what order.
//
// Both selections are pure: they copy the input, never mutate it, and can be
// called concurrently on the same collection.
package blog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kei-k23/portfolio/internal/model"
	"github.com/kei-k23/portfolio/internal/util"
)

// Validation causes wrapped by DataIntegrityError.
var (
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrMalformedSlug = errors.New("malformed slug")
	ErrMissingDate   = errors.New("missing publication date")
)

// SelectForListing returns the posts for the blog listing page, most recent
// first. Drafts are dropped when isProduction is true.
func SelectForListing(posts []model.Post, isProduction bool) []model.Post {
	result := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if isProduction && p.Draft {
			continue
		}
		result = append(result, p)
	}
	slices.SortFunc(result, byRecency)
	return result
}

// SelectRecent returns at most count posts, most recent first. Drafts are not
// filtered here; callers that need the public view pass the output of
// SelectForListing.
func SelectRecent(posts []model.Post, count int) ([]model.Post, error) {
	if count < 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidArgument)
	}

	sorted := slices.Clone(posts)
	if sorted == nil {
		sorted = []model.Post{}
	}
	slices.SortFunc(sorted, byRecency)

	if count < len(sorted) {
		sorted = sorted[:count]
	}
	return sorted, nil
}

// Validate checks the collection invariants: every post has a well-formed
// unique slug and a publication date. All violations are reported together.
func Validate(posts []model.Post) error {
	var errs []error
	seen := make(map[string]struct{}, len(posts))

	for _, p := range posts {
		if !util.IsValidSlug(p.Slug) {
			errs = append(errs, &DataIntegrityError{Slug: p.Slug, Field: "slug", Err: ErrMalformedSlug})
		} else if _, dup := seen[p.Slug]; dup {
			errs = append(errs, &DataIntegrityError{Slug: p.Slug, Field: "slug", Err: ErrDuplicateSlug})
		}
		seen[p.Slug] = struct{}{}

		if p.PublishedAt.IsZero() {
			errs = append(errs, &DataIntegrityError{Slug: p.Slug, Field: "publishedAt", Err: ErrMissingDate})
		}
	}

	return errors.Join(errs...)
}

// byRecency orders by publication date descending, then slug ascending so
// posts published at the same instant always come out in the same order.
func byRecency(a, b model.Post) int {
	if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}
