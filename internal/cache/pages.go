// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/kei-k23/portfolio/internal/metrics"
)

const pageKeyPrefix = "page:"

// Page is a rendered response body.
type Page struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache caches rendered pages by request path.
type PageCache struct {
	cache Cacher
	pages *TypedCache[Page]

	// generation is part of every key; Invalidate bumps it so a render that
	// started before the bump stores under a key nobody reads.
	generation atomic.Uint64
}

// NewPageCache creates a page cache on top of c.
func NewPageCache(c Cacher, ttl time.Duration) *PageCache {
	return &PageCache{
		cache: c,
		pages: NewTypedCache[Page](c, ttl),
	}
}

// GetOrRender returns the cached page for key or renders and caches it.
// Render errors are returned as-is and nothing is cached.
func (p *PageCache) GetOrRender(ctx context.Context, key string, render func() (Page, error)) (Page, error) {
	page, hit, err := p.pages.GetOrSet(ctx, p.key(key), render)
	if err != nil {
		return Page{}, err
	}
	if hit {
		metrics.PageCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.PageCacheTotal.WithLabelValues("miss").Inc()
	}
	return page, nil
}

func (p *PageCache) key(key string) string {
	return pageKeyPrefix + strconv.FormatUint(p.generation.Load(), 10) + ":" + key
}

// Invalidate drops every cached page, including pages whose render is still
// in flight.
func (p *PageCache) Invalidate(ctx context.Context) error {
	p.generation.Add(1)
	if pd, ok := p.cache.(interface {
		DeleteByPrefix(ctx context.Context, prefix string) error
	}); ok {
		return pd.DeleteByPrefix(ctx, pageKeyPrefix)
	}
	return p.cache.Clear(ctx)
}

// Backend returns the underlying byte cache.
func (p *PageCache) Backend() Cacher {
	return p.cache
}
