// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldhtml "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/kei-k23/portfolio/internal/blog"
	"github.com/kei-k23/portfolio/internal/model"
	"github.com/kei-k23/portfolio/internal/util"
)

const (
	excerptLength  = 200
	wordsPerMinute = 200
)

// dateLayouts are the accepted front matter date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

var (
	errNoFrontMatter   = errors.New("missing front matter")
	errUnterminated    = errors.New("unterminated front matter")
	errMissingPubDate  = errors.New("publishedAt is required")
	errUnparseableDate = errors.New("unrecognized date format")
)

// frontMatter is the YAML header of a post file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	PublishedAt string   `yaml:"publishedAt"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Draft       bool     `yaml:"draft"`
	Summary     string   `yaml:"summary"`
	Tags        []string `yaml:"tags"`
}

// Parser turns post files into model.Post values.
type Parser struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strip  *bluemonday.Policy
}

// NewParser creates a parser with GitHub-flavoured Markdown and a UGC
// sanitizing policy.
func NewParser() *Parser {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(goldhtml.WithUnsafe()),
		),
		policy: policy,
		strip:  bluemonday.StrictPolicy(),
	}
}

// Parse parses a single post file. name is the file name, used for the
// fallback slug and in error reports.
func (p *Parser) Parse(name string, data []byte) (model.Post, error) {
	header, body, err := splitFrontMatter(data)
	if err != nil {
		return model.Post{}, &blog.DataIntegrityError{Slug: name, Field: "frontMatter", Err: err}
	}

	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return model.Post{}, &blog.DataIntegrityError{Slug: name, Field: "frontMatter", Err: err}
	}

	slug := fm.Slug
	if slug == "" {
		slug = util.SlugFromFilename(name)
	}

	if strings.TrimSpace(fm.PublishedAt) == "" {
		return model.Post{}, &blog.DataIntegrityError{Slug: slug, Field: "publishedAt", Err: errMissingPubDate}
	}
	publishedAt, err := parseDate(fm.PublishedAt)
	if err != nil {
		return model.Post{}, &blog.DataIntegrityError{Slug: slug, Field: "publishedAt", Err: err}
	}

	var updatedAt time.Time
	if strings.TrimSpace(fm.UpdatedAt) != "" {
		updatedAt, err = parseDate(fm.UpdatedAt)
		if err != nil {
			return model.Post{}, &blog.DataIntegrityError{Slug: slug, Field: "updatedAt", Err: err}
		}
	}

	var buf bytes.Buffer
	if err := p.md.Convert(body, &buf); err != nil {
		return model.Post{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	rendered := p.policy.Sanitize(buf.String())
	text := p.plainText(rendered)

	summary := strings.TrimSpace(fm.Summary)
	if summary == "" {
		summary = truncateText(text, excerptLength)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = slug
	}

	return model.Post{
		Slug:        slug,
		Title:       title,
		Summary:     summary,
		Tags:        fm.Tags,
		Body:        rendered,
		ReadingTime: readingTime(text),
		Draft:       fm.Draft,
		PublishedAt: publishedAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// plainText strips all markup and collapses whitespace.
func (p *Parser) plainText(rendered string) string {
	text := html.UnescapeString(p.strip.Sanitize(rendered))
	return strings.Join(strings.Fields(text), " ")
}

// splitFrontMatter separates the leading "---" delimited YAML block from the
// Markdown body.
func splitFrontMatter(data []byte) (header, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(data, []byte("---\n")) {
		return nil, nil, errNoFrontMatter
	}
	rest := data[len("---\n"):]

	// The closing delimiter is a line holding exactly "---".
	for offset := 0; offset <= len(rest); {
		line, after, found := bytes.Cut(rest[offset:], []byte("\n"))
		if string(bytes.TrimRight(line, " \t")) == "---" {
			if offset > 0 {
				header = rest[:offset-1]
			}
			if found {
				body = after
			}
			return header, body, nil
		}
		if !found {
			break
		}
		offset += len(line) + 1
	}
	return nil, nil, errUnterminated
}

// parseDate parses a front matter date using the accepted layouts.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", s, errUnparseableDate)
}

// truncateText truncates text to maxLen runes at a word boundary.
func truncateText(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	truncated := string(runes[:maxLen])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}

// readingTime estimates minutes to read, never less than one.
func readingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
