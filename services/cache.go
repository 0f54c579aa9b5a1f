package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"travelcms/constants"
	"travelcms/services/logger"
)

// Cache is a read-through JSON cache over redis. A nil Cache, or one without
// a client, always misses and ignores writes.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

// Get reports whether key was found and decoded into dst. Redis errors count as misses.
func (c *Cache) Get(ctx context.Context, key string, dst interface{}) bool {
	if !c.enabled() {
		return false
	}
	found, err := GetFromRedis(ctx, c.rdb, key, dst)
	if err != nil {
		c.logger.Error("cache get %s: %v", key, err)
		return false
	}
	return found
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if !c.enabled() {
		return
	}
	if err := SetToRedis(ctx, c.rdb, key, value, c.ttl); err != nil {
		c.logger.Error("cache set %s: %v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.enabled() {
		return
	}
	if err := DeleteFromRedis(ctx, c.rdb, keys...); err != nil {
		c.logger.Error("cache delete %v: %v", keys, err)
	}
}

func (c *Cache) DeletePrefix(ctx context.Context, prefix string) {
	if !c.enabled() {
		return
	}
	if err := DeleteByPrefix(ctx, c.rdb, prefix); err != nil {
		c.logger.Error("cache delete prefix %s: %v", prefix, err)
	}
}

// InvalidateCatalog drops every cached public view
func (c *Cache) InvalidateCatalog(ctx context.Context) {
	c.Delete(ctx, constants.CacheKeyHomepage, constants.CacheKeyActiveContinents)
	c.DeletePrefix(ctx, constants.CacheKeyPrefixPackages)
}
