package cache

import (
	"fmt"
	"net/url"
	"time"
)

// Backend names reported by NewCacheWithInfo.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds configuration for cache creation.
type Config struct {
	// RedisURL selects the Redis backend when non-empty.
	// Example: redis://localhost:6379/0
	RedisURL string

	// Prefix namespaces Redis keys.
	Prefix string

	DefaultTTL time.Duration

	// MaxSize is the maximum number of entries for memory cache (0 = unlimited)
	MaxSize int

	CleanupInterval time.Duration

	// FallbackToMemory keeps the server running on an in-memory cache
	// when Redis cannot be reached at startup.
	FallbackToMemory bool
}

// Info describes the cache that NewCacheWithInfo built.
type Info struct {
	Backend    string
	IsFallback bool

	// FallbackErr is the Redis error that caused the fallback.
	FallbackErr error
}

// NewCache creates a cache based on the provided configuration.
func NewCache(cfg Config) (Cacher, error) {
	c, _, err := NewCacheWithInfo(cfg)
	return c, err
}

// NewCacheWithInfo creates a cache and reports which backend is in use.
func NewCacheWithInfo(cfg Config) (Cacher, Info, error) {
	if cfg.RedisURL == "" {
		return newMemory(cfg), Info{Backend: BackendMemory}, nil
	}

	opts := DefaultRedisCacheOptions()
	opts.URL = cfg.RedisURL
	if cfg.Prefix != "" {
		opts.Prefix = cfg.Prefix
	}
	if cfg.DefaultTTL > 0 {
		opts.DefaultTTL = cfg.DefaultTTL
	}

	rc, err := NewRedisCache(opts)
	if err == nil {
		return rc, Info{Backend: BackendRedis}, nil
	}
	if !cfg.FallbackToMemory {
		return nil, Info{}, fmt.Errorf("connecting to redis at %s: %w", SanitizeRedisURL(cfg.RedisURL), err)
	}

	return newMemory(cfg), Info{Backend: BackendMemory, IsFallback: true, FallbackErr: err}, nil
}

func newMemory(cfg Config) *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cfg.CleanupInterval,
	})
}

// NewSimpleMemoryCache creates an unbounded memory cache with a one-minute
// cleanup loop.
func NewSimpleMemoryCache(ttl time.Duration) *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      ttl,
		CleanupInterval: time.Minute,
	})
}

// SanitizeRedisURL masks the password in a Redis URL for logging.
func SanitizeRedisURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[invalid redis url]"
	}
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	return u.String()
}
