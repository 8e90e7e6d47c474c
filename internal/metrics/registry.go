// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts HTTP requests by method, route pattern and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Content metrics
var (
	// ContentReloadsTotal counts content reloads by result (success, error)
	ContentReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_content_reloads_total",
			Help: "Total number of content reloads",
		},
		[]string{"result"},
	)

	// PostsLoaded tracks the posts in the current snapshot by state (published, draft)
	PostsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "portfolio_posts_loaded",
			Help: "Number of posts in the current content snapshot",
		},
		[]string{"state"},
	)

	// PageCacheTotal counts rendered page cache lookups by result (hit, miss)
	PageCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_page_cache_total",
			Help: "Rendered page cache lookups",
		},
		[]string{"result"},
	)
)

// LogEventsTotal counts log records at WARN and above by level and category
var LogEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portfolio_log_events_total",
		Help: "Total number of warning and error log records",
	},
	[]string{"level", "category"},
)
