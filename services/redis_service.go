package services

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"travelcms/services/metrics"
)

// GetFromRedis decodes key into target. found is false on a miss.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	metrics.ObserveCache("redis", "hit")

	if err := json.Unmarshal(cachedData, target); err != nil {
		return false, err
	}
	return true, nil
}

func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	metrics.ObserveCache("redis", "set")
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	metrics.ObserveCache("redis", "del")
	return rdb.Del(ctx, keys...).Err()
}

// DeleteByPrefix removes every key starting with prefix
func DeleteByPrefix(ctx context.Context, rdb *redis.Client, prefix string) error {
	iter := rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return DeleteFromRedis(ctx, rdb, keys...)
}
