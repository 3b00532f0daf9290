package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "revoked_token:"

// TokenRepositoryRedis نگهداری شناسه توکن‌های باطل‌شده در Redis
type TokenRepositoryRedis struct {
	Client *redis.Client
	Logger *zap.Logger
}

func NewTokenRepositoryRedis(client *redis.Client, logger *zap.Logger) *TokenRepositoryRedis {
	return &TokenRepositoryRedis{
		Client: client,
		Logger: logger,
	}
}

// Revoke stores the token id until ttl passes; the key expires by itself.
func (r *TokenRepositoryRedis) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedKeyPrefix + tokenID
	if err := r.Client.Set(ctx, key, 1, ttl).Err(); err != nil {
		return err
	}
	r.Logger.Debug("Token revoked", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *TokenRepositoryRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.Client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	return n > 0, nil
}
