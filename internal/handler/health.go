// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/kei-k23/portfolio/internal/cache"
	"github.com/kei-k23/portfolio/internal/model"
)

// pingTimeout bounds the cache check of a health request.
const pingTimeout = 2 * time.Second

// ContentState reports whether the content store holds a snapshot.
type ContentState interface {
	Loaded() bool
	LoadedAt() time.Time
	Posts() []model.Post
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	content      ContentState
	cache        cache.Cacher
	cacheBackend string
	version      string
	allowVerbose bool
	startTime    time.Time
}

// NewHealthHandler creates a new health handler. allowVerbose enables the
// runtime details of ?verbose=true.
func NewHealthHandler(content ContentState, c cache.Cacher, cacheBackend, version string, allowVerbose bool) *HealthHandler {
	return &HealthHandler{
		content:      content,
		cache:        c,
		cacheBackend: cacheBackend,
		version:      version,
		allowVerbose: allowVerbose,
		startTime:    time.Now(),
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAlloc     string `json:"mem_alloc"`
	MemSys       string `json:"mem_sys"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	contentCheck := h.checkContent()
	cacheCheck := h.checkCache(r.Context())

	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks: map[string]Check{
			"content": contentCheck,
			"cache":   cacheCheck,
		},
	}

	code := http.StatusOK
	if contentCheck.Status != "healthy" || cacheCheck.Status != "healthy" {
		status.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	if h.allowVerbose && r.URL.Query().Get("verbose") == "true" {
		status.System = getSystemInfo()
	}

	writeJSON(w, code, status)
}

// Liveness handles GET /health/live - simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready - ready once content is loaded and
// the cache answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.checkContent().Status != "healthy" || h.checkCache(r.Context()).Status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandler) checkContent() Check {
	if !h.content.Loaded() {
		return Check{Status: "unhealthy", Message: "content not loaded"}
	}
	return Check{
		Status:  "healthy",
		Message: strconv.Itoa(len(h.content.Posts())) + " posts, loaded " + h.content.LoadedAt().UTC().Format(time.RFC3339),
	}
}

// checkCache pings backends that support it. The error itself is not
// reported since it may name the Redis host.
func (h *HealthHandler) checkCache(ctx context.Context) Check {
	pinger, ok := h.cache.(cache.Pinger)
	if !ok {
		return Check{Status: "healthy", Message: h.cacheBackend}
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := pinger.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		return Check{Status: "unhealthy", Message: h.cacheBackend + " unreachable", Latency: latency.String()}
	}
	return Check{Status: "healthy", Message: h.cacheBackend, Latency: latency.String()}
}

// getSystemInfo returns system-level metrics.
func getSystemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     formatBytes(m.Alloc),
		MemSys:       formatBytes(m.Sys),
	}
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
