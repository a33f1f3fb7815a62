package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance; nil means catalog caching is disabled.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       GetEnvInt("REDIS_DB", 0),
	})
}

// PingRedis drops the client when the server is unreachable and reports whether caching is on.
func PingRedis(ctx context.Context) bool {
	if RedisClient == nil {
		return false
	}
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		RedisClient = nil
		return false
	}
	return true
}
