// Package cache provides totals caches backed by Redis or by nothing at all.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

const (
	totalsKeyPrefix = "totals:"
	allTotalsKey    = totalsKeyPrefix + "all"
)

// redisTotalsCache implements the adapter.TotalsCache interface on Redis.
type redisTotalsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTotalsCache creates a totals cache storing JSON values with the given TTL.
func NewRedisTotalsCache(client *redis.Client, ttl time.Duration) adapter.TotalsCache {
	return &redisTotalsCache{
		client: client,
		ttl:    ttl,
	}
}

// TotalsKey returns the cache key for a date, or for the whole ledger when date is nil.
func TotalsKey(date *time.Time) string {
	if date == nil {
		return allTotalsKey
	}
	return totalsKeyPrefix + entity.FormatDate(*date)
}

// Get returns the cached totals and whether they were present.
func (c *redisTotalsCache) Get(ctx context.Context, date *time.Time) (*entity.Nutrients, bool, error) {
	raw, err := c.client.Get(ctx, TotalsKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read totals from cache: %w", err)
	}

	var totals entity.Nutrients
	if err := json.Unmarshal(raw, &totals); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached totals: %w", err)
	}
	return &totals, true, nil
}

// Set stores totals for a date.
func (c *redisTotalsCache) Set(ctx context.Context, date *time.Time, totals entity.Nutrients) error {
	raw, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("failed to encode totals: %w", err)
	}

	if err := c.client.Set(ctx, TotalsKey(date), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write totals to cache: %w", err)
	}
	return nil
}

// Invalidate drops the totals of the given dates and the whole-ledger totals.
func (c *redisTotalsCache) Invalidate(ctx context.Context, dates ...time.Time) error {
	keys := make([]string, 0, len(dates)+1)
	keys = append(keys, allTotalsKey)
	for i := range dates {
		keys = append(keys, TotalsKey(&dates[i]))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached totals: %w", err)
	}

	slog.Debug("Invalidated cached totals", "keys", keys)
	return nil
}
