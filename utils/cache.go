// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"studyrooms/config"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// AvailabilityCacheKey builds the cache key for one room/date/duration
// availability query.
func AvailabilityCacheKey(roomID, date string, durationMinutes int) string {
	return fmt.Sprintf("%s%s:%s:%d", AvailabilityCachePrefix, roomID, date, durationMinutes)
}

// InvalidateAvailability drops every cached availability entry for the
// room/date pair.
func InvalidateAvailability(ctx context.Context, client *redis.Client, roomID, date string) error {
	pattern := fmt.Sprintf("%s%s:%s:*", AvailabilityCachePrefix, roomID, date)
	keys, err := client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
