// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that counts WARN and ERROR records
// in Prometheus while forwarding everything to the wrapped handler.
package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kei-k23/portfolio/internal/metrics"
)

// Log categories used as the "category" attribute and metric label.
const (
	CategoryContent   = "content"
	CategoryCache     = "cache"
	CategoryHTTP      = "http"
	CategoryScheduler = "scheduler"
	CategoryConfig    = "config"
	CategorySystem    = "system"
)

// MetricsHandler is a slog.Handler that wraps another handler and counts
// records at or above its threshold into metrics.LogEventsTotal.
type MetricsHandler struct {
	inner    slog.Handler
	level    slog.Level // Minimum level to count (default: WARN)
	category string     // Category bound through WithAttrs, if any
}

// NewMetricsHandler wraps inner and counts WARN and ERROR records.
func NewMetricsHandler(inner slog.Handler) *MetricsHandler {
	return NewMetricsHandlerWithLevel(inner, slog.LevelWarn)
}

// NewMetricsHandlerWithLevel creates a MetricsHandler with a custom minimum level.
func NewMetricsHandlerWithLevel(inner slog.Handler, level slog.Level) *MetricsHandler {
	return &MetricsHandler{inner: inner, level: level}
}

// Enabled implements slog.Handler.
func (h *MetricsHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *MetricsHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		metrics.LogEventsTotal.WithLabelValues(levelLabel(r.Level), h.categoryOf(r)).Inc()
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *MetricsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	category := h.category
	for _, a := range attrs {
		if a.Key == "category" {
			category = a.Value.String()
		}
	}
	return &MetricsHandler{
		inner:    h.inner.WithAttrs(attrs),
		level:    h.level,
		category: category,
	}
}

// WithGroup implements slog.Handler.
func (h *MetricsHandler) WithGroup(name string) slog.Handler {
	return &MetricsHandler{
		inner:    h.inner.WithGroup(name),
		level:    h.level,
		category: h.category,
	}
}

func levelLabel(level slog.Level) string {
	if level >= slog.LevelError {
		return "error"
	}
	return "warn"
}

// categoryOf returns the record's "category" attribute, the one bound via
// WithAttrs, or a category inferred from the message.
func (h *MetricsHandler) categoryOf(r slog.Record) string {
	category := h.category
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})
	if category != "" {
		return category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "post") || strings.Contains(msg, "content"):
		return CategoryContent
	case strings.Contains(msg, "cache") || strings.Contains(msg, "redis"):
		return CategoryCache
	case strings.Contains(msg, "request") || strings.Contains(msg, "render") || strings.Contains(msg, "http"):
		return CategoryHTTP
	case strings.Contains(msg, "cron") || strings.Contains(msg, "schedule"):
		return CategoryScheduler
	case strings.Contains(msg, "config"):
		return CategoryConfig
	default:
		return CategorySystem
	}
}
