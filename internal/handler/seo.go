// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/kei-k23/portfolio/internal/blog"
	"github.com/kei-k23/portfolio/internal/cache"
	"github.com/kei-k23/portfolio/internal/seo"
)

// Sitemap handles GET /sitemap.xml. Drafts are never listed, whatever the
// environment.
func (h *FrontendHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cacheKeySitemap, func() (cache.Page, error) {
		posts := blog.SelectForListing(h.store.Posts(), true)
		body, err := seo.GenerateSitemap(h.cfg.SiteURL, posts, h.cfg.BlogEnabled)
		if err != nil {
			return cache.Page{}, err
		}
		return cache.Page{ContentType: contentTypeXML, Body: body}, nil
	})
}

// Robots handles GET /robots.txt. Everything is disallowed outside
// production.
func (h *FrontendHandler) Robots(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cacheKeyRobots, func() (cache.Page, error) {
		body := seo.GenerateRobots(h.cfg.SiteURL, !h.cfg.IsProduction)
		return cache.Page{ContentType: contentTypeText, Body: []byte(body)}, nil
	})
}
