package config

import (
	"context"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Ctx = context.Background()

var RedisClient *redis.Client

// ConnectRedis returns a nil client when REDIS_ADDR is empty so the app runs without cache.
func ConnectRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Warn().Msg("REDIS_ADDR is empty, caching disabled")
		return nil, nil
	}

	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	res, err := rdb.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Info().Str("addr", addr).Str("ping", res).Msg("redis connected")
	return rdb, nil
}
