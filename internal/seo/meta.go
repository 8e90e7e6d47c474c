// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds meta tags, JSON-LD, sitemap.xml and robots.txt.
package seo

import (
	"encoding/json"
	"html/template"
	"strings"
	"time"

	"github.com/kei-k23/portfolio/internal/model"
)

// Meta holds all SEO meta tag data for a page.
type Meta struct {
	Title         string // Page title (for <title> tag)
	Description   string // Meta description
	Keywords      string // Meta keywords
	Author        string
	Canonical     string // Canonical URL
	OGTitle       string // Open Graph title
	OGDescription string // Open Graph description
	OGImage       string // Open Graph image URL (absolute)
	OGType        string // Open Graph type (website, article)
	OGSiteName    string
	OGURL         string
	Robots        string // index,follow / noindex,nofollow
	TwitterCard   string
	TwitterSite   string // Twitter @username
	PublishedTime string // article:published_time
	ModifiedTime  string // article:modified_time
}

// SiteConfig contains site-wide settings for SEO.
type SiteConfig struct {
	SiteName        string
	SiteURL         string
	SiteDescription string
	Author          string
	Keywords        []string
	DefaultOGImage  string
	TwitterHandle   string

	// NoIndex marks every page noindex,nofollow (non-production sites).
	NoIndex bool
}

// PageData describes a non-post page such as /projects.
type PageData struct {
	Title       string
	Description string
	Path        string
}

// BuildMeta creates meta tags for a page. A nil page yields the homepage meta.
func BuildMeta(page *PageData, site *SiteConfig) *Meta {
	meta := baseMeta(site)

	if page == nil {
		meta.Title = site.SiteName
		meta.Description = site.SiteDescription
		meta.Canonical = makeAbsoluteURL("/", site.SiteURL)
	} else {
		meta.Title = pageTitle(page.Title, site.SiteName)
		meta.Description = site.SiteDescription
		if page.Description != "" {
			meta.Description = page.Description
		}
		meta.Canonical = makeAbsoluteURL(page.Path, site.SiteURL)
	}

	meta.OGTitle = meta.Title
	meta.OGDescription = meta.Description
	meta.OGURL = meta.Canonical
	return meta
}

// BuildPostMeta creates article meta tags for a blog post.
func BuildPostMeta(post *model.Post, site *SiteConfig) *Meta {
	meta := baseMeta(site)
	meta.OGType = "article"

	meta.Title = pageTitle(post.Title, site.SiteName)
	meta.OGTitle = post.Title

	meta.Description = post.Summary
	if meta.Description == "" {
		meta.Description = truncateText(stripHTML(post.Body), 160)
	}
	meta.OGDescription = meta.Description

	if len(post.Tags) > 0 {
		meta.Keywords = strings.Join(post.Tags, ", ")
	}

	meta.Canonical = makeAbsoluteURL(post.URL(), site.SiteURL)
	meta.OGURL = meta.Canonical
	meta.PublishedTime = post.PublishedAt.Format(time.RFC3339)
	meta.ModifiedTime = post.LastModified().Format(time.RFC3339)

	if post.Draft {
		meta.Robots = buildRobotsDirective(true, true)
	}
	return meta
}

func baseMeta(site *SiteConfig) *Meta {
	meta := &Meta{
		OGType:      "website",
		TwitterCard: "summary_large_image",
		OGSiteName:  site.SiteName,
		TwitterSite: site.TwitterHandle,
		Author:      site.Author,
		Keywords:    strings.Join(site.Keywords, ", "),
		Robots:      buildRobotsDirective(site.NoIndex, site.NoIndex),
	}
	if site.DefaultOGImage != "" {
		meta.OGImage = makeAbsoluteURL(site.DefaultOGImage, site.SiteURL)
	}
	return meta
}

func pageTitle(title, siteName string) string {
	if title == "" || title == siteName {
		return siteName
	}
	return title + " | " + siteName
}

// buildRobotsDirective creates the robots meta content from noindex/nofollow flags.
func buildRobotsDirective(noIndex, noFollow bool) string {
	index, follow := "index", "follow"
	if noIndex {
		index = "noindex"
	}
	if noFollow {
		follow = "nofollow"
	}
	return index + "," + follow
}

// ArticleSchema represents JSON-LD BlogPosting structured data.
type ArticleSchema struct {
	Context          string        `json:"@context"`
	Type             string        `json:"@type"`
	Headline         string        `json:"headline"`
	Description      string        `json:"description,omitempty"`
	Image            string        `json:"image,omitempty"`
	DatePublished    string        `json:"datePublished,omitempty"`
	DateModified     string        `json:"dateModified,omitempty"`
	Keywords         []string      `json:"keywords,omitempty"`
	Author           *PersonSchema `json:"author,omitempty"`
	MainEntityOfPage string        `json:"mainEntityOfPage,omitempty"`
}

// PersonSchema represents JSON-LD Person structured data.
type PersonSchema struct {
	Context string   `json:"@context,omitempty"`
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	URL     string   `json:"url,omitempty"`
	SameAs  []string `json:"sameAs,omitempty"`
}

// BuildArticleSchema creates JSON-LD structured data for a post.
func BuildArticleSchema(post *model.Post, site *SiteConfig) template.JS {
	if post == nil {
		return ""
	}

	article := ArticleSchema{
		Context:          "https://schema.org",
		Type:             "BlogPosting",
		Headline:         post.Title,
		Description:      post.Summary,
		DatePublished:    post.PublishedAt.Format(time.RFC3339),
		DateModified:     post.LastModified().Format(time.RFC3339),
		Keywords:         post.Tags,
		MainEntityOfPage: makeAbsoluteURL(post.URL(), site.SiteURL),
	}
	if site.DefaultOGImage != "" {
		article.Image = makeAbsoluteURL(site.DefaultOGImage, site.SiteURL)
	}
	if site.Author != "" {
		article.Author = &PersonSchema{Type: "Person", Name: site.Author, URL: site.SiteURL}
	}

	return marshalJSONLD(article)
}

// BuildPersonSchema creates JSON-LD for the site owner on the home page.
func BuildPersonSchema(site *SiteConfig, profiles []string) template.JS {
	return marshalJSONLD(PersonSchema{
		Context: "https://schema.org",
		Type:    "Person",
		Name:    site.Author,
		URL:     site.SiteURL,
		SameAs:  profiles,
	})
}

// marshalJSONLD marshals structured data to JSON-LD script tag content.
func marshalJSONLD(v any) template.JS {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return template.JS(data) //nolint:gosec // encoding/json escapes <, > and &
}

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			result.WriteRune(' ')
		case !inTag:
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// truncateText truncates text to maxLen runes at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	truncated := string(runes[:maxLen])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}
	return strings.TrimSpace(truncated) + "..."
}

// makeAbsoluteURL ensures a URL is absolute by prepending site URL if needed.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}
