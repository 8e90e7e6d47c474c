// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Post represents one authored blog entry.
type Post struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Body        string    `json:"body"` // sanitized HTML
	ReadingTime int       `json:"reading_time"`
	Draft       bool      `json:"draft"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// IsDraft returns true if the post is not ready for public display.
func (p *Post) IsDraft() bool {
	return p.Draft
}

// LastModified returns UpdatedAt when set, PublishedAt otherwise.
func (p *Post) LastModified() time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	return p.PublishedAt
}

// URL returns the public path of the post.
func (p *Post) URL() string {
	return "/blog/" + p.Slug
}
