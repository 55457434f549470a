package database

import (
	"context"
	"log"

	"github.com/ajitashwath/dare-exchange/config"

	"github.com/redis/go-redis/v9"
)

var Cache *redis.Client

// InitCache initializes the Redis client used for the stats cache.
// The server keeps running without a cache if Redis is unreachable.
func InitCache() {
	Cache = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	if err := Cache.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unavailable, stats caching disabled: ", err)
		Cache = nil
	}
}
