package utils

import (
	"context"
	"time"

	"fobworks/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitRedis initializes the generic Redis cache client.
func InitRedis() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		zap.L().Fatal("redis connect failed", zap.Error(err))
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}
