package utils

import (
	"context"
	"log"
	"time"

	"psrcustoms/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client used for the public catalog read cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. The cache is best-effort: if
// Redis is unreachable the client is still set and catalog reads fall back to
// Mongo on cache errors.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("Redis cache unreachable, catalog reads will go straight to Mongo: %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
