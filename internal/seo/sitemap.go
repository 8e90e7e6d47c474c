// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/kei-k23/portfolio/internal/model"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Change frequency values used by the site.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder builds sitemap XML.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		urls:    make([]SitemapURL, 0),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/",
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "1.0",
	})
}

// AddSection adds a fixed site section such as /projects or /blog.
func (b *SitemapBuilder) AddSection(path string, freq ChangeFreq, lastMod time.Time) {
	url := SitemapURL{
		Loc:        b.siteURL + path,
		ChangeFreq: freq,
		Priority:   "0.8",
	}
	if !lastMod.IsZero() {
		url.LastMod = lastMod.Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddPost adds a blog post with its last modification time.
func (b *SitemapBuilder) AddPost(post model.Post) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + post.URL(),
		LastMod:    post.LastModified().Format(time.RFC3339),
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.6",
	})
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(output, xmlBytes...), nil
}

// GenerateSitemap builds the sitemap for the site. posts must already be the
// visitor-visible listing; the blog section is omitted when the blog is off.
func GenerateSitemap(siteURL string, posts []model.Post, blogEnabled bool) ([]byte, error) {
	b := NewSitemapBuilder(siteURL)
	b.AddHomepage()
	b.AddSection("/projects", ChangeFreqMonthly, time.Time{})

	if blogEnabled {
		var newest time.Time
		for _, p := range posts {
			if lm := p.LastModified(); lm.After(newest) {
				newest = lm
			}
		}
		b.AddSection("/blog", ChangeFreqDaily, newest)
		for _, p := range posts {
			b.AddPost(p)
		}
	}
	return b.Build()
}
