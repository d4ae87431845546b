// Package cache implements the snapshot cache on Redis, with an
// in-memory fallback for deployments without Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
)

// snapshotTTL bounds how long a stale snapshot can outlive its user's
// activity. It is retention, not freshness; freshness is the fetch
// guard's job.
const snapshotTTL = 24 * time.Hour

// redisSnapshotCache implements adapter.SnapshotCache on Redis.
type redisSnapshotCache struct {
	client *redis.Client
}

// NewRedisSnapshotCache creates a Redis-backed snapshot cache.
func NewRedisSnapshotCache(client *redis.Client) adapter.SnapshotCache {
	return &redisSnapshotCache{
		client: client,
	}
}

func snapshotKey(userID uuid.UUID) string {
	return "analytics:snapshot:" + userID.String()
}

// Get returns the cached snapshot, or nil on a cache miss.
func (c *redisSnapshotCache) Get(ctx context.Context, userID uuid.UUID) (*entity.AnalyticsSnapshot, error) {
	payload, err := c.client.Get(ctx, snapshotKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot from redis: %w", err)
	}

	var snapshot entity.AnalyticsSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}
	return &snapshot, nil
}

// Set replaces the user's cached snapshot.
func (c *redisSnapshotCache) Set(ctx context.Context, userID uuid.UUID, snapshot *entity.AnalyticsSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey(userID), payload, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to redis: %w", err)
	}
	return nil
}

// memorySnapshotCache implements adapter.SnapshotCache in process memory.
type memorySnapshotCache struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]*entity.AnalyticsSnapshot
}

// NewMemorySnapshotCache creates an in-memory snapshot cache.
func NewMemorySnapshotCache() adapter.SnapshotCache {
	return &memorySnapshotCache{
		snapshots: make(map[uuid.UUID]*entity.AnalyticsSnapshot),
	}
}

func (c *memorySnapshotCache) Get(ctx context.Context, userID uuid.UUID) (*entity.AnalyticsSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshots[userID], nil
}

func (c *memorySnapshotCache) Set(ctx context.Context, userID uuid.UUID, snapshot *entity.AnalyticsSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[userID] = snapshot
	return nil
}
