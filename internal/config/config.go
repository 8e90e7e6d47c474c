// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
)

// EnvProduction is the PORTFOLIO_ENV value that hides drafts and opens
// the site to crawlers.
const EnvProduction = "production"

// ReloadOff disables periodic content reloads.
const ReloadOff = "off"

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Env        string `env:"PORTFOLIO_ENV" envDefault:"development"`
	ServerHost string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"8080"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	SiteURL    string `env:"PORTFOLIO_SITE_URL" envDefault:"http://localhost:8080"`

	// Content configuration
	ContentDir       string `env:"PORTFOLIO_CONTENT_DIR"`                             // Empty serves the embedded sample content
	ContentReload    string `env:"PORTFOLIO_CONTENT_RELOAD" envDefault:"*/5 * * * *"` // Cron expression; "off" disables reloads
	RecentPostsCount int    `env:"PORTFOLIO_RECENT_POSTS_COUNT" envDefault:"2"`       // Posts shown on the home page
	BlogEnabled      bool   `env:"PORTFOLIO_BLOG_ENABLED" envDefault:"true"`          // false renders "Coming Soon..." on /blog

	// Cache configuration
	RedisURL     string `env:"PORTFOLIO_REDIS_URL"`                        // Optional Redis URL for the page cache
	CachePrefix  string `env:"PORTFOLIO_CACHE_PREFIX"`                     // Redis key prefix; defaults to "portfolio:<env>:"
	CacheTTL     int    `env:"PORTFOLIO_CACHE_TTL" envDefault:"600"`       // Page cache TTL in seconds
	CacheMaxSize int    `env:"PORTFOLIO_CACHE_MAX_SIZE" envDefault:"1000"` // Max memory cache entries

	// Rate limiting (per client IP)
	RateLimitRPS   float64 `env:"PORTFOLIO_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"PORTFOLIO_RATE_LIMIT_BURST" envDefault:"20"`
}

// IsProduction reports whether drafts must be hidden from visitors.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// CacheTTLDuration returns the page cache TTL.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// ReloadEnabled returns true if periodic content reloads are configured.
func (c Config) ReloadEnabled() bool {
	return c.ContentReload != "" && c.ContentReload != ReloadOff
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	if cfg.CachePrefix == "" {
		// Instances of different environments sharing one Redis must not
		// serve each other's pages.
		cfg.CachePrefix = "portfolio:" + cfg.Env + ":"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.ServerPort < 1 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort))
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("PORTFOLIO_LOG_LEVEL must be one of %s, got %q",
			strings.Join(logLevels, ", "), c.LogLevel))
	}
	if u, err := url.Parse(c.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("PORTFOLIO_SITE_URL must be an absolute URL, got %q", c.SiteURL))
	}
	if c.RecentPostsCount < 0 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_RECENT_POSTS_COUNT must not be negative, got %d", c.RecentPostsCount))
	}
	if c.ReloadEnabled() {
		if _, err := cron.ParseStandard(c.ContentReload); err != nil {
			errs = append(errs, fmt.Errorf("PORTFOLIO_CONTENT_RELOAD is not a valid cron expression: %w", err))
		}
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_CACHE_TTL must be positive, got %d", c.CacheTTL))
	}
	if c.CacheMaxSize < 0 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_CACHE_MAX_SIZE must not be negative, got %d", c.CacheMaxSize))
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, errors.New("PORTFOLIO_RATE_LIMIT_RPS and PORTFOLIO_RATE_LIMIT_BURST must not be negative"))
	} else if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_RATE_LIMIT_BURST must be at least 1 when rate limiting is on, got %d", c.RateLimitBurst))
	}

	return errors.Join(errs...)
}
