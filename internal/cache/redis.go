package cache

import (
	"context"
	"strings"
	"time"

	"refspot_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the cache port with a Redis server. Every operation
// degrades silently: an unreachable backend means direct reads, never a
// failed request.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache accepts either a host:port address or a redis:// URL.
func NewRedisCache(addr string, db int) *RedisCache {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			logger.Warn("Invalid redis URL, caching degraded to no-op", "error", err)
			opt = &redis.Options{Addr: "localhost:6379"}
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr, DB: db})
	}
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debug("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Debug("cache set failed", "key", key, "error", err)
	}
}

func (r *RedisCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		logger.Debug("cache invalidate failed", "keys", keys, "error", err)
	}
}
