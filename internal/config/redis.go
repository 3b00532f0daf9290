package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient متغیر برای دسترسی به Redis
var RedisClient *redis.Client

// InitRedis connects to Redis and checks the connection with PING.
func InitRedis(ctx context.Context, addr, password string, db int) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	s, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("connecting to Redis: %w", err)
	}
	Logger.Info("Connected to Redis", zap.String("addr", addr), zap.String("ping", s))
	return nil
}

// CloseRedis closes the Redis client if one was created.
func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		Logger.Error("Error closing Redis connection", zap.Error(err))
	}
}
