// Package gateway adapts infrastructure drivers to the domain ports.
package gateway

import (
	"context"
	"fmt"
	"time"

	"auth-gate/internal/domain"
)

// KeyValueStore is the slice of the Redis driver the cache gateway
// needs.
type KeyValueStore interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
	SetValue(ctx context.Context, key, payload string, ttl time.Duration) error
}

// CacheGateway implements domain.UserCache over Redis, serializing
// records as JSON keyed by userId. The cache is a pure accelerator:
// whatever is stored always reflects the last directory fetch.
type CacheGateway struct {
	store KeyValueStore
	ttl   time.Duration
}

// NewCacheGateway creates a cache gateway. ttl of 0 stores entries
// without expiry.
func NewCacheGateway(store KeyValueStore, ttl time.Duration) *CacheGateway {
	return &CacheGateway{store: store, ttl: ttl}
}

// Get reads the cached record for userID. Transport faults and
// malformed stored payloads are errors, not misses.
func (g *CacheGateway) Get(ctx context.Context, userID string) (domain.UserRecord, bool, error) {
	payload, found, err := g.store.GetValue(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}
	if !found {
		return nil, false, nil
	}

	record, err := domain.DecodeUserRecord(payload)
	if err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry for %q: %w", userID, err)
	}
	return record, true, nil
}

// Set stores record under its userId.
func (g *CacheGateway) Set(ctx context.Context, record domain.UserRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	payload, err := record.Encode()
	if err != nil {
		return err
	}

	if err := g.store.SetValue(ctx, record.UserID(), payload, g.ttl); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}
	return nil
}
