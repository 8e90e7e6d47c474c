// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every PORTFOLIO_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, "PORTFOLIO_") {
			continue
		}
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
		t.Cleanup(func() { _ = os.Setenv(key, value) })
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for default env")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "localhost:8080")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.RecentPostsCount != 2 {
		t.Errorf("RecentPostsCount = %d, want 2", cfg.RecentPostsCount)
	}
	if !cfg.BlogEnabled {
		t.Error("BlogEnabled = false, want true")
	}
	if cfg.ContentDir != "" {
		t.Errorf("ContentDir = %q, want empty", cfg.ContentDir)
	}
	if !cfg.ReloadEnabled() || cfg.ContentReload != "*/5 * * * *" {
		t.Errorf("ContentReload = %q", cfg.ContentReload)
	}
	if cfg.UseRedisCache() {
		t.Error("UseRedisCache() = true without PORTFOLIO_REDIS_URL")
	}
	if cfg.CacheTTLDuration() != 10*time.Minute {
		t.Errorf("CacheTTLDuration() = %v, want 10m", cfg.CacheTTLDuration())
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_ENV", "production")
	t.Setenv("PORTFOLIO_SERVER_HOST", "0.0.0.0")
	t.Setenv("PORTFOLIO_SERVER_PORT", "3000")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "DEBUG")
	t.Setenv("PORTFOLIO_SITE_URL", "https://kei-k23.dev/")
	t.Setenv("PORTFOLIO_CONTENT_DIR", "/srv/content")
	t.Setenv("PORTFOLIO_CONTENT_RELOAD", "off")
	t.Setenv("PORTFOLIO_RECENT_POSTS_COUNT", "5")
	t.Setenv("PORTFOLIO_BLOG_ENABLED", "false")
	t.Setenv("PORTFOLIO_REDIS_URL", "redis://localhost:6379/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false")
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q", cfg.ServerAddr())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want lowercased debug", cfg.LogLevel)
	}
	if cfg.SiteURL != "https://kei-k23.dev" {
		t.Errorf("SiteURL = %q, want trailing slash trimmed", cfg.SiteURL)
	}
	if cfg.ContentDir != "/srv/content" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if cfg.ReloadEnabled() {
		t.Error("ReloadEnabled() = true with reloads turned off")
	}
	if cfg.RecentPostsCount != 5 {
		t.Errorf("RecentPostsCount = %d, want 5", cfg.RecentPostsCount)
	}
	if cfg.BlogEnabled {
		t.Error("BlogEnabled = true, want false")
	}
	if !cfg.UseRedisCache() {
		t.Error("UseRedisCache() = false")
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"development", false},
		{"staging", false},
		{"Production", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := (Config{Env: tt.env}).IsProduction(); got != tt.want {
			t.Errorf("IsProduction() with Env=%q = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"port too large", "PORTFOLIO_SERVER_PORT", "70000", "PORTFOLIO_SERVER_PORT"},
		{"port not a number", "PORTFOLIO_SERVER_PORT", "http", "parsing config"},
		{"unknown log level", "PORTFOLIO_LOG_LEVEL", "verbose", "PORTFOLIO_LOG_LEVEL"},
		{"relative site url", "PORTFOLIO_SITE_URL", "kei-k23.dev", "PORTFOLIO_SITE_URL"},
		{"negative recent count", "PORTFOLIO_RECENT_POSTS_COUNT", "-1", "PORTFOLIO_RECENT_POSTS_COUNT"},
		{"bad cron", "PORTFOLIO_CONTENT_RELOAD", "every five minutes", "PORTFOLIO_CONTENT_RELOAD"},
		{"zero ttl", "PORTFOLIO_CACHE_TTL", "0", "PORTFOLIO_CACHE_TTL"},
		{"negative burst", "PORTFOLIO_RATE_LIMIT_BURST", "-3", "PORTFOLIO_RATE_LIMIT_BURST"},
		{"zero burst with rate limit on", "PORTFOLIO_RATE_LIMIT_BURST", "0", "PORTFOLIO_RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ZeroBurstWithRateLimitOff(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_RATE_LIMIT_RPS", "0")
	t.Setenv("PORTFOLIO_RATE_LIMIT_BURST", "0")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
}

func TestLoad_CachePrefixPerEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		prefix string
		want   string
	}{
		{"development default", "development", "", "portfolio:development:"},
		{"production default", "production", "", "portfolio:production:"},
		{"explicit prefix kept", "production", "site:", "site:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORTFOLIO_ENV", tt.env)
			if tt.prefix != "" {
				t.Setenv("PORTFOLIO_CACHE_PREFIX", tt.prefix)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.CachePrefix != tt.want {
				t.Errorf("CachePrefix = %q, want %q", cfg.CachePrefix, tt.want)
			}
		})
	}
}

func TestLoad_ReportsAllProblems(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_SERVER_PORT", "0")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "loud")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded, want error")
	}
	for _, want := range []string{"PORTFOLIO_SERVER_PORT", "PORTFOLIO_LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
