// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a selection is called with an argument
// outside its domain, such as a negative count.
var ErrInvalidArgument = errors.New("invalid argument")

// DataIntegrityError reports a post record that violates the collection
// invariants (unique slug, parseable publication date).
type DataIntegrityError struct {
	Slug  string // offending post slug, or source file when no slug is known
	Field string // "slug" or "publishedAt"
	Err   error
}

func (e *DataIntegrityError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("post %q: invalid %s", e.Slug, e.Field)
	}
	return fmt.Sprintf("post %q: invalid %s: %v", e.Slug, e.Field, e.Err)
}

func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}
