package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"fitweek/internal/model"
)

// IntakeCache fronts the weekly protein log query with a short-lived redis
// entry per user. A dirty marker is set whenever a new entry is enqueued, so
// a cached week is never served while the persist worker may still be
// catching up.
type IntakeCache struct {
	client         *redisv9.Client
	intakeTTL      time.Duration
	dirtyMarkerTTL time.Duration
}

func NewIntakeCache(client *redisv9.Client, intakeTTL, dirtyMarkerTTL time.Duration) *IntakeCache {
	if intakeTTL <= 0 {
		intakeTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &IntakeCache{
		client:         client,
		intakeTTL:      intakeTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *IntakeCache) GetWeek(ctx context.Context, userID uint) ([]model.ProteinLog, bool, error) {
	key := c.weekKey(userID)
	raw, err := c.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get intake week failed: %w", err)
	}

	var entries []model.ProteinLog
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached intake week failed: %w", err)
	}
	return entries, true, nil
}

func (c *IntakeCache) SetWeek(ctx context.Context, userID uint, entries []model.ProteinLog) error {
	key := c.weekKey(userID)
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal intake week failed: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.intakeTTL).Err(); err != nil {
		return fmt.Errorf("redis set intake week failed: %w", err)
	}
	return nil
}

func (c *IntakeCache) DeleteWeek(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.weekKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete intake week failed: %w", err)
	}
	return nil
}

func (c *IntakeCache) MarkDirty(ctx context.Context, userID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(userID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *IntakeCache) IsDirty(ctx context.Context, userID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *IntakeCache) weekKey(userID uint) string {
	return fmt.Sprintf("intake:week:%d", userID)
}

func (c *IntakeCache) dirtyKey(userID uint) string {
	return fmt.Sprintf("intake:week:dirty:%d", userID)
}
