// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import "github.com/go-chi/chi/v5"

// RegisterFrontendRoutes mounts the public pages and SEO files.
func RegisterFrontendRoutes(r chi.Router, h *FrontendHandler) {
	r.Get(RouteRoot, h.Home)
	r.Get(RouteProjects, h.Projects)
	r.Get(RouteBlog, h.Blog)
	r.Get(RouteBlogPost, h.BlogPost)
	r.Get(RouteSitemap, h.Sitemap)
	r.Get(RouteRobots, h.Robots)
}

// RegisterHealthRoutes mounts the health endpoints.
func RegisterHealthRoutes(r chi.Router, h *HealthHandler) {
	r.Get(RouteHealth, h.Health)
	r.Get(RouteHealthLive, h.Liveness)
	r.Get(RouteHealthReady, h.Readiness)
}
