package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portsrepo "github.com/svitvalut/exchange_backend/internal/core/ports/repositories"
)

const snapshotKey = "rates:snapshot"

// RedisSnapshotCache stores the assembled rate snapshot in redis. Besides
// shaving database reads it is the survival path: when postgres is down the
// storefront keeps quoting from the last snapshot until the TTL runs out.
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotCache creates a snapshot cache with the given TTL.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) portsrepo.SnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl}
}

// GetSnapshot retrieves the cached snapshot. A missing key maps to
// apperrors.ErrNotFound.
func (c *RedisSnapshotCache) GetSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	val, err := c.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: no cached rate snapshot", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read cached rate snapshot: %w", err)
	}

	var snapshot domain.RateSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cached rate snapshot: %w", err)
	}
	return &snapshot, nil
}

// SetSnapshot stores a freshly assembled snapshot.
func (c *RedisSnapshotCache) SetSnapshot(ctx context.Context, snapshot *domain.RateSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode rate snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rate snapshot: %w", err)
	}
	return nil
}
