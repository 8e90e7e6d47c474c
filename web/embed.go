// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the templates, static assets and sample content.
package web

import "embed"

//go:embed all:templates
var Templates embed.FS

//go:embed all:static/dist
var Static embed.FS

// Content holds the sample posts served when no content directory is
// configured. Posts live under content/posts.
//
//go:embed content/posts/*.md
var Content embed.FS
