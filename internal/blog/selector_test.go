// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kei-k23/portfolio/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func slugs(posts []model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func examplePosts() []model.Post {
	return []model.Post{
		{Slug: "a", PublishedAt: date("2023-01-01"), Draft: false},
		{Slug: "b", PublishedAt: date("2024-06-01"), Draft: true},
		{Slug: "c", PublishedAt: date("2024-01-01"), Draft: false},
	}
}

func TestSelectForListing_Example(t *testing.T) {
	posts := examplePosts()

	assert.Equal(t, []string{"c", "a"}, slugs(SelectForListing(posts, true)))
	assert.Equal(t, []string{"b", "c", "a"}, slugs(SelectForListing(posts, false)))
}

func TestSelectRecent_Example(t *testing.T) {
	got, err := SelectRecent(examplePosts(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, slugs(got))
}

func TestSelectForListing_DoesNotMutateInput(t *testing.T) {
	posts := examplePosts()
	before := slugs(posts)

	_ = SelectForListing(posts, true)
	_ = SelectForListing(posts, false)
	_, _ = SelectRecent(posts, 3)

	if diff := cmp.Diff(before, slugs(posts)); diff != "" {
		t.Errorf("input reordered (-before +after):\n%s", diff)
	}
}

func TestSelectForListing_Empty(t *testing.T) {
	for _, prod := range []bool{true, false} {
		got := SelectForListing(nil, prod)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}

	recent, err := SelectRecent(nil, 5)
	require.NoError(t, err)
	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}

func TestSelectForListing_TieBreakBySlug(t *testing.T) {
	same := date("2024-02-02")
	posts := []model.Post{
		{Slug: "zeta", PublishedAt: same},
		{Slug: "alpha", PublishedAt: same},
		{Slug: "mid", PublishedAt: same},
		{Slug: "newer", PublishedAt: date("2024-03-01")},
	}

	want := []string{"newer", "alpha", "mid", "zeta"}
	assert.Equal(t, want, slugs(SelectForListing(posts, false)))

	recent, err := SelectRecent(posts, 4)
	require.NoError(t, err)
	assert.Equal(t, want, slugs(recent))
}

func TestSelectRecent(t *testing.T) {
	posts := examplePosts()

	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{name: "zero", count: 0, want: []string{}},
		{name: "one", count: 1, want: []string{"b"}},
		{name: "exact", count: 3, want: []string{"b", "c", "a"}},
		{name: "more than available", count: 10, want: []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectRecent(posts, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slugs(got))
		})
	}
}

func TestSelectRecent_NegativeCount(t *testing.T) {
	_, err := SelectRecent(examplePosts(), -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

// randomPosts builds a collection with colliding dates and random drafts.
func randomPosts(r *rand.Rand, n int) []model.Post {
	base := date("2020-01-01")
	posts := make([]model.Post, n)
	for i := range posts {
		posts[i] = model.Post{
			Slug:        fmt.Sprintf("post-%d", i),
			PublishedAt: base.AddDate(0, 0, r.IntN(30)),
			Draft:       r.IntN(3) == 0,
		}
	}
	return posts
}

func TestSelectForListing_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for iter := 0; iter < 200; iter++ {
		posts := randomPosts(r, r.IntN(25))

		prod := SelectForListing(posts, true)
		for _, p := range prod {
			if p.Draft {
				t.Fatalf("iteration %d: draft %q in production listing", iter, p.Slug)
			}
		}

		dev := SelectForListing(posts, false)
		assert.ElementsMatch(t, slugs(posts), slugs(dev))

		for _, listing := range [][]model.Post{prod, dev} {
			for i := 1; i < len(listing); i++ {
				if listing[i-1].PublishedAt.Before(listing[i].PublishedAt) {
					t.Fatalf("iteration %d: %q before %q out of order", iter, listing[i-1].Slug, listing[i].Slug)
				}
			}
		}

		if diff := cmp.Diff(slugs(prod), slugs(SelectForListing(prod, true))); diff != "" {
			t.Fatalf("iteration %d: production listing not idempotent:\n%s", iter, diff)
		}
		if diff := cmp.Diff(slugs(dev), slugs(SelectForListing(dev, false))); diff != "" {
			t.Fatalf("iteration %d: development listing not idempotent:\n%s", iter, diff)
		}
	}
}

func TestSelectRecent_LengthProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for iter := 0; iter < 200; iter++ {
		posts := randomPosts(r, r.IntN(10))
		count := r.IntN(12)

		got, err := SelectRecent(posts, count)
		require.NoError(t, err)
		assert.Len(t, got, min(count, len(posts)))
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(examplePosts()))
		assert.NoError(t, Validate(nil))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		posts := append(examplePosts(), model.Post{Slug: "a", PublishedAt: date("2022-01-01")})

		err := Validate(posts)
		require.Error(t, err)

		var die *DataIntegrityError
		require.True(t, errors.As(err, &die))
		assert.Equal(t, "a", die.Slug)
		assert.Equal(t, "slug", die.Field)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})

	t.Run("missing date", func(t *testing.T) {
		err := Validate([]model.Post{{Slug: "undated"}})

		var die *DataIntegrityError
		require.True(t, errors.As(err, &die))
		assert.Equal(t, "publishedAt", die.Field)
		assert.ErrorIs(t, err, ErrMissingDate)
	})

	t.Run("malformed slug", func(t *testing.T) {
		err := Validate([]model.Post{{Slug: "Not A Slug", PublishedAt: date("2024-01-01")}})
		assert.ErrorIs(t, err, ErrMalformedSlug)
	})

	t.Run("reports every violation", func(t *testing.T) {
		err := Validate([]model.Post{
			{Slug: "x"},
			{Slug: "x", PublishedAt: date("2024-01-01")},
		})
		assert.ErrorIs(t, err, ErrMissingDate)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})
}

func TestDataIntegrityError_Error(t *testing.T) {
	err := &DataIntegrityError{Slug: "hello", Field: "publishedAt", Err: ErrMissingDate}
	assert.Equal(t, `post "hello": invalid publishedAt: missing publication date`, err.Error())

	bare := &DataIntegrityError{Slug: "hello", Field: "slug"}
	assert.Equal(t, `post "hello": invalid slug`, bare.Error())
}
