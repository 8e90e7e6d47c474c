// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kei-k23/portfolio/internal/cache"
	"github.com/kei-k23/portfolio/internal/config"
	"github.com/kei-k23/portfolio/internal/content"
	"github.com/kei-k23/portfolio/internal/handler"
	"github.com/kei-k23/portfolio/internal/logging"
	"github.com/kei-k23/portfolio/internal/middleware"
	"github.com/kei-k23/portfolio/internal/render"
	"github.com/kei-k23/portfolio/internal/scheduler"
	"github.com/kei-k23/portfolio/internal/version"
	"github.com/kei-k23/portfolio/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

const (
	staticMaxAge       = 365 * 24 * time.Hour
	rateLimitCleanup   = 10 * time.Minute
	requestTimeout     = 30 * time.Second
	shutdownTimeout    = 30 * time.Second
	initialLoadTimeout = time.Minute
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "portfolio - personal portfolio and blog server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ENV                 Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SERVER_PORT         Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SITE_URL            Public site URL (default: http://localhost:8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_CONTENT_DIR         Content directory (default: embedded sample posts)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_CONTENT_RELOAD      Reload cron expression or \"off\" (default: */5 * * * *)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_BLOG_ENABLED        Serve the blog (default: true)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_REDIS_URL           Redis URL for the page cache (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Println(versionInfo.String())
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo version.Info) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logging.NewMetricsHandler(textHandler))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Content
	postsFS, err := contentFS(cfg.ContentDir)
	if err != nil {
		return err
	}
	store := content.NewStore(content.NewFSSource(postsFS, content.PostsDir), logger)
	loadCtx, cancelLoad := context.WithTimeout(ctx, initialLoadTimeout)
	err = store.Load(loadCtx)
	cancelLoad()
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	// Page cache
	cacheBackend, cacheInfo, err := cache.NewCacheWithInfo(cache.Config{
		RedisURL:         cfg.RedisURL,
		Prefix:           cfg.CachePrefix,
		DefaultTTL:       cfg.CacheTTLDuration(),
		MaxSize:          cfg.CacheMaxSize,
		CleanupInterval:  time.Minute,
		FallbackToMemory: true,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	if cacheInfo.IsFallback {
		slog.Warn("redis unavailable, using memory cache",
			"category", logging.CategoryCache,
			"redis_url", cache.SanitizeRedisURL(cfg.RedisURL),
			"error", cacheInfo.FallbackErr,
		)
	}
	slog.Info("page cache initialized", "backend", cacheInfo.Backend, "ttl", cfg.CacheTTLDuration())

	pages := cache.NewPageCache(cacheBackend, cfg.CacheTTLDuration())
	// Pages left in Redis by a previous run may predate the current content.
	if err := pages.Invalidate(ctx); err != nil {
		slog.Warn("page cache invalidation failed", "category", logging.CategoryCache, "error", err)
	}
	store.OnReload(func() {
		if err := pages.Invalidate(context.Background()); err != nil {
			slog.Warn("page cache invalidation failed", "category", logging.CategoryCache, "error", err)
		}
	})

	// Content reloads
	if cfg.ReloadEnabled() {
		sched, err := scheduler.New(store, cfg.ContentReload, logger)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		if err := sched.Start(); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}
		defer sched.Stop()
	} else {
		slog.Info("content reloads disabled")
	}

	// Templates
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	frontendHandler := handler.NewFrontendHandler(renderer, store, pages, handler.FrontendConfig{
		IsProduction:     cfg.IsProduction(),
		BlogEnabled:      cfg.BlogEnabled,
		RecentPostsCount: cfg.RecentPostsCount,
		SiteURL:          cfg.SiteURL,
	}, logger)
	healthHandler := handler.NewHealthHandler(store, cacheBackend, cacheInfo.Backend, versionInfo.Version, !cfg.IsProduction())

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead) // HEAD requests for uptime monitoring
	r.Use(middleware.Metrics)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.StripTrailingSlash)

	securityConfig := middleware.DefaultSecurityHeadersConfig(!cfg.IsProduction())
	r.Use(middleware.SecurityHeaders(securityConfig))
	slog.Info("security headers middleware initialized", "hsts", cfg.IsProduction())

	handler.RegisterHealthRoutes(r, healthHandler)
	r.Handle(handler.RouteMetrics, promhttp.Handler())

	// Public pages
	r.Group(func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
			limiter.StartCleanup(ctx, rateLimitCleanup)
			r.Use(limiter.HTMLMiddleware())
			slog.Info("rate limiter initialized", "rate", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
		}
		handler.RegisterFrontendRoutes(r, frontendHandler)
	})

	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	maxAge := staticMaxAge
	if !cfg.IsProduction() {
		maxAge = 0
	}
	staticHandler := middleware.StaticCache(maxAge)(http.StripPrefix(handler.StaticPrefix, http.FileServer(http.FS(staticFS))))
	r.Handle(handler.RouteStatic, staticHandler)

	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// contentFS returns the content root: dir on disk, or the embedded samples.
func contentFS(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("content directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("content directory %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	sub, err := fs.Sub(web.Content, "content")
	if err != nil {
		return nil, fmt.Errorf("getting embedded content fs: %w", err)
	}
	return sub, nil
}
