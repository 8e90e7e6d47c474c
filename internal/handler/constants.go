// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the home page.
	RouteRoot = "/"
	// RouteProjects lists web apps and tools.
	RouteProjects = "/projects"
	// RouteBlog is the post listing.
	RouteBlog = "/blog"
	// RouteBlogPost is a single post.
	RouteBlogPost = "/blog/{slug}"

	RouteSitemap = "/sitemap.xml"
	RouteRobots  = "/robots.txt"

	RouteHealth      = "/health"
	RouteHealthLive  = "/health/live"
	RouteHealthReady = "/health/ready"
	RouteMetrics     = "/metrics"

	// RouteStatic serves embedded assets.
	RouteStatic = "/static/dist/*"
	// StaticPrefix is stripped before looking up a static file.
	StaticPrefix = "/static/dist/"
)

// Page template names (files under web/templates/pages).
const (
	TemplateHome       = "home"
	TemplateProjects   = "projects"
	TemplateBlog       = "blog"
	TemplatePost       = "post"
	TemplateComingSoon = "coming_soon"
	TemplateNotFound   = "404"
	TemplateError      = "error"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeXML  = "application/xml; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
)

// Page cache keys.
const (
	cacheKeyHome     = "home"
	cacheKeyProjects = "projects"
	cacheKeyBlog     = "blog"
	cacheKeyPost     = "post:"
	cacheKeySitemap  = "sitemap"
	cacheKeyRobots   = "robots"
)
