package cache

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/shared/logger"

	"github.com/redis/go-redis/v9"
)

const (
	generationKeyFormat = "portfolio:gen:%s"
	cacheKeyFormat      = "portfolio:cache:%s:%s:%s"
)

// NewRedisClient creates a Redis client with bounded connection timeouts.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	})
}

// RedisListCache is a best-effort read-through cache for list responses.
// Each collection carries a generation counter; writers bump it, which
// orphans every cached entry of that collection at once. Orphaned entries
// age out through the TTL.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

// NewRedisListCache creates a new list cache with the given entry TTL.
func NewRedisListCache(client *redis.Client, ttl time.Duration, log logger.Logger) *RedisListCache {
	return &RedisListCache{
		client: client,
		ttl:    ttl,
		log:    log.WithComponent("list-cache"),
	}
}

// Get returns the cached payload for a collection listing, if present.
func (c *RedisListCache) Get(ctx context.Context, collection, signature string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, c.key(ctx, collection, signature)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debugf("cache read failed for %s: %v", collection, err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a listing payload under the collection's current generation.
func (c *RedisListCache) Set(ctx context.Context, collection, signature string, payload []byte) {
	if err := c.client.Set(ctx, c.key(ctx, collection, signature), payload, c.ttl).Err(); err != nil {
		c.log.Debugf("cache write failed for %s: %v", collection, err)
	}
}

// Invalidate bumps the collection's generation counter, detaching all cached
// listings of that collection.
func (c *RedisListCache) Invalidate(ctx context.Context, collection string) {
	if err := c.client.Incr(ctx, fmt.Sprintf(generationKeyFormat, collection)).Err(); err != nil {
		c.log.Debugf("cache invalidation failed for %s: %v", collection, err)
	}
}

func (c *RedisListCache) key(ctx context.Context, collection, signature string) string {
	gen, err := c.client.Get(ctx, fmt.Sprintf(generationKeyFormat, collection)).Result()
	if err != nil {
		gen = "0"
	}
	return fmt.Sprintf(cacheKeyFormat, collection, gen, signature)
}
