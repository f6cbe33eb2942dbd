package utils

import (
	"context"
	"log"
	"time"

	"festquote/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds the wizard sessions and their submit locks.
var SessionCacheClient *redis.Client

// InitSessionCache connects to the session database and fails fast when Redis is unreachable.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session client, connecting on first use.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
