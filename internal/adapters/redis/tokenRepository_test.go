package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// skipIfNoRedis skips the test unless BLOG_TEST_REDIS_ADDR points at a server.
func skipIfNoRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("BLOG_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis tests: BLOG_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestTokenRepositoryRedis(t *testing.T) {
	client := skipIfNoRedis(t)
	repo := NewTokenRepositoryRedis(client, zap.NewNop())
	ctx := context.Background()

	tokenID := uuid.Must(uuid.NewV4()).String()
	t.Cleanup(func() { client.Del(ctx, revokedKeyPrefix+tokenID) })

	revoked, err := repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, tokenID, time.Minute))

	revoked, err = repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, revokedKeyPrefix+tokenID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestTokenRepositoryRedis_ExpiredTTLIsNoop(t *testing.T) {
	client := skipIfNoRedis(t)
	repo := NewTokenRepositoryRedis(client, zap.NewNop())
	ctx := context.Background()

	tokenID := uuid.Must(uuid.NewV4()).String()
	require.NoError(t, repo.Revoke(ctx, tokenID, 0))

	revoked, err := repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)
}
