// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP handlers for the portfolio.
package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kei-k23/portfolio/internal/blog"
	"github.com/kei-k23/portfolio/internal/cache"
	"github.com/kei-k23/portfolio/internal/model"
	"github.com/kei-k23/portfolio/internal/render"
	"github.com/kei-k23/portfolio/internal/seo"
	"github.com/kei-k23/portfolio/internal/site"
	"github.com/kei-k23/portfolio/internal/util"
)

// PostStore is the read side of the content store.
type PostStore interface {
	Posts() []model.Post
	Post(slug string) (model.Post, bool)
}

// FrontendConfig holds the settings the public pages depend on.
type FrontendConfig struct {
	IsProduction     bool
	BlogEnabled      bool
	RecentPostsCount int
	SiteURL          string
}

// FrontendHandler serves the public pages.
type FrontendHandler struct {
	renderer *render.Renderer
	store    PostStore
	pages    *cache.PageCache // nil disables page caching
	cfg      FrontendConfig
	seo      *seo.SiteConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewFrontendHandler creates the public page handler.
func NewFrontendHandler(renderer *render.Renderer, store PostStore, pages *cache.PageCache, cfg FrontendConfig, logger *slog.Logger) *FrontendHandler {
	return &FrontendHandler{
		renderer: renderer,
		store:    store,
		pages:    pages,
		cfg:      cfg,
		seo:      siteSEOConfig(cfg),
		logger:   logger.With("category", "http"),
		now:      time.Now,
	}
}

func siteSEOConfig(cfg FrontendConfig) *seo.SiteConfig {
	meta := site.Metadata
	return &seo.SiteConfig{
		SiteName:        meta.Title,
		SiteURL:         cfg.SiteURL,
		SiteDescription: meta.Description,
		Author:          meta.Author,
		Keywords:        meta.Keywords,
		DefaultOGImage:  meta.SocialBanner,
		TwitterHandle:   "@" + path.Base(meta.Social.X),
		NoIndex:         !cfg.IsProduction,
	}
}

// BaseTemplateData contains fields shared by every page.
type BaseTemplateData struct {
	Site   site.Info
	Nav    []site.NavItem
	Meta   *seo.Meta
	JSONLD template.JS
	Year   int
}

// HomeData is the data for the home page.
type HomeData struct {
	BaseTemplateData
	Socials     []site.SocialLink
	RecentPosts []model.Post
}

// ProjectsData is the data for the projects page.
type ProjectsData struct {
	BaseTemplateData
	WebApps []site.WebApp
	Tools   []site.Tool
}

// BlogData is the data for the blog listing.
type BlogData struct {
	BaseTemplateData
	Posts []model.Post
}

// PostData is the data for a single post.
type PostData struct {
	BaseTemplateData
	Post model.Post
}

func (h *FrontendHandler) base(path string, meta *seo.Meta) BaseTemplateData {
	return BaseTemplateData{
		Site: site.Metadata,
		Nav:  site.Nav(path, h.cfg.BlogEnabled),
		Meta: meta,
		Year: h.now().Year(),
	}
}

// listing is the visitor-visible post collection, most recent first.
func (h *FrontendHandler) listing() []model.Post {
	return blog.SelectForListing(h.store.Posts(), h.cfg.IsProduction)
}

// Home handles GET /.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, cacheKeyHome, TemplateHome, func() (any, error) {
		data := &HomeData{
			BaseTemplateData: h.base(RouteRoot, seo.BuildMeta(nil, h.seo)),
			Socials:          site.Socials,
		}
		data.JSONLD = seo.BuildPersonSchema(h.seo, socialProfiles())

		if h.cfg.BlogEnabled {
			// Production previews only what the listing shows; development
			// previews every post, drafts included.
			candidates := h.store.Posts()
			if h.cfg.IsProduction {
				candidates = blog.SelectForListing(candidates, true)
			}
			recent, err := blog.SelectRecent(candidates, h.cfg.RecentPostsCount)
			if err != nil {
				return nil, err
			}
			data.RecentPosts = recent
		}
		return data, nil
	})
}

// Projects handles GET /projects.
func (h *FrontendHandler) Projects(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, cacheKeyProjects, TemplateProjects, func() (any, error) {
		meta := seo.BuildMeta(&seo.PageData{
			Title:       "Projects",
			Description: "Web apps, packages and tools I have built.",
			Path:        RouteProjects,
		}, h.seo)
		return &ProjectsData{
			BaseTemplateData: h.base(RouteProjects, meta),
			WebApps:          site.WebApps,
			Tools:            site.Tools,
		}, nil
	})
}

// Blog handles GET /blog. A disabled blog shows the coming soon page.
func (h *FrontendHandler) Blog(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.BlogEnabled {
		h.servePage(w, r, cacheKeyBlog, TemplateComingSoon, func() (any, error) {
			meta := seo.BuildMeta(&seo.PageData{Title: "Blog", Path: RouteBlog}, h.seo)
			return &BlogData{BaseTemplateData: h.base(RouteBlog, meta)}, nil
		})
		return
	}

	h.servePage(w, r, cacheKeyBlog, TemplateBlog, func() (any, error) {
		meta := seo.BuildMeta(&seo.PageData{
			Title:       "Blog",
			Description: "Read my blogs on web development, design and more.",
			Path:        RouteBlog,
		}, h.seo)
		return &BlogData{
			BaseTemplateData: h.base(RouteBlog, meta),
			Posts:            h.listing(),
		}, nil
	})
}

// BlogPost handles GET /blog/{slug}. Unknown slugs, a disabled blog and
// drafts in production are all 404.
func (h *FrontendHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !h.cfg.BlogEnabled || !util.IsValidSlug(slug) {
		h.NotFound(w, r)
		return
	}

	post, ok := h.store.Post(slug)
	if !ok || (h.cfg.IsProduction && post.IsDraft()) {
		h.NotFound(w, r)
		return
	}

	h.servePage(w, r, cacheKeyPost+slug, TemplatePost, func() (any, error) {
		data := &PostData{
			BaseTemplateData: h.base(post.URL(), seo.BuildPostMeta(&post, h.seo)),
			Post:             post,
		}
		data.JSONLD = seo.BuildArticleSchema(&post, h.seo)
		return data, nil
	})
}

// NotFound renders the 404 page. Not-found pages are never cached.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	meta := seo.BuildMeta(&seo.PageData{Title: "Not Found", Path: r.URL.Path}, h.seo)
	meta.Robots = "noindex,nofollow"

	data := h.base(r.URL.Path, meta)
	if err := h.renderer.Render(w, http.StatusNotFound, TemplateNotFound, &data); err != nil {
		h.logger.Error("failed to render 404 page", "error", err, "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

// servePage renders name through the page cache and writes it as HTML.
func (h *FrontendHandler) servePage(w http.ResponseWriter, r *http.Request, key, name string, build func() (any, error)) {
	renderPage := func() (cache.Page, error) {
		data, err := build()
		if err != nil {
			return cache.Page{}, err
		}
		body, err := h.renderer.Bytes(name, data)
		if err != nil {
			return cache.Page{}, err
		}
		return cache.Page{ContentType: contentTypeHTML, Body: body}, nil
	}

	h.serveCached(w, r, key, renderPage)
}

// serveCached writes a cached or freshly rendered page with status 200.
func (h *FrontendHandler) serveCached(w http.ResponseWriter, r *http.Request, key string, renderPage func() (cache.Page, error)) {
	var (
		page cache.Page
		err  error
	)
	if h.pages != nil {
		page, err = h.pages.GetOrRender(r.Context(), key, renderPage)
	} else {
		page, err = renderPage()
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", page.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Body)
}

// serverError logs err and renders the generic error page. No error detail
// reaches the visitor.
func (h *FrontendHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("failed to render page", "error", err, "path", r.URL.Path)

	data := h.base(r.URL.Path, seo.BuildMeta(&seo.PageData{Title: "Error", Path: r.URL.Path}, h.seo))
	if renderErr := h.renderer.Render(w, http.StatusInternalServerError, TemplateError, &data); renderErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func socialProfiles() []string {
	profiles := make([]string, 0, len(site.Socials))
	for _, s := range site.Socials {
		profiles = append(profiles, s.Href)
	}
	return profiles
}
