package cache

import (
	"context"
	"fmt"
	"time"

	"refspot_backend/internal/config"
	"refspot_backend/internal/logger"
)

// Cache is the explicit cache port. All implementations are best-effort:
// a failing backend behaves like a cache miss and never surfaces an error
// to the request path.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Invalidate drops the given keys.
	Invalidate(ctx context.Context, keys ...string)
}

// NewCache builds a cache instance based on configuration.
func NewCache(cfg *config.Config) Cache {
	switch cfg.Cache.Type {
	case "redis":
		return NewRedisCache(cfg.Cache.Addr, cfg.Cache.DB)
	case "memory":
		return NewMemoryCache()
	case "none":
		return NewNoopCache()
	default:
		logger.Warn("Unknown cache type, caching disabled", "type", cfg.Cache.Type)
		return NewNoopCache()
	}
}

// Cache keys, one per user and purpose.

func ConnectionsKey(userID uint) string {
	return fmt.Sprintf("user:%d:connections", userID)
}

func MessageCountsKey(userID uint) string {
	return fmt.Sprintf("user:%d:message_counts", userID)
}

// NoopCache is used when caching is disabled outright.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {}

func (n *NoopCache) Invalidate(ctx context.Context, keys ...string) {}
