package memory

import (
	"context"
	"sync"
	"time"
)

// TokenBlacklist is the in-process stand-in for the Redis blacklist.
type TokenBlacklist struct {
	mu      sync.Mutex
	now     func() time.Time
	revoked map[string]time.Time
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (b *TokenBlacklist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ttl <= 0 {
		return nil
	}
	b.revoked[tokenID] = b.now().Add(ttl)
	return nil
}

func (b *TokenBlacklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expiresAt, ok := b.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !b.now().Before(expiresAt) {
		delete(b.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
