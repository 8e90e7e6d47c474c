// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content loads blog posts from Markdown files and keeps the current
// validated snapshot in memory.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/kei-k23/portfolio/internal/blog"
	"github.com/kei-k23/portfolio/internal/model"
)

// PostsDir is the directory, relative to the content root, holding post files.
const PostsDir = "posts"

// Source supplies the full post collection.
type Source interface {
	Posts(ctx context.Context) ([]model.Post, error)
}

// FSSource reads Markdown posts from a filesystem.
type FSSource struct {
	fsys   fs.FS
	dir    string
	parser *Parser
}

// NewFSSource creates a source reading *.md files from dir within fsys.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	return &FSSource{
		fsys:   fsys,
		dir:    dir,
		parser: NewParser(),
	}
}

// Posts reads, parses and validates every post file. Any malformed file fails
// the whole read so a broken collection never reaches visitors.
func (s *FSSource) Posts(ctx context.Context) ([]model.Post, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Post{}, nil
		}
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}

	posts := make([]model.Post, 0, len(entries))
	var errs []error

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}

		name := path.Join(s.dir, entry.Name())
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		post, err := s.parser.Parse(entry.Name(), data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		posts = append(posts, post)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := blog.Validate(posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// StaticSource serves a fixed collection; used for tests and previews.
type StaticSource []model.Post

// Posts returns a copy of the collection after validating it.
func (s StaticSource) Posts(_ context.Context) ([]model.Post, error) {
	posts := make([]model.Post, len(s))
	copy(posts, s)
	if err := blog.Validate(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Ensure implementations satisfy Source.
var (
	_ Source = (*FSSource)(nil)
	_ Source = StaticSource(nil)
)
