package adaptertest

import (
	"context"
	"sync"
	"time"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

const allKey = "all"

// TotalsCache is an in-memory adapter.TotalsCache that records its traffic.
type TotalsCache struct {
	mu          sync.Mutex
	values      map[string]entity.Nutrients
	Hits        int
	Invalidated []time.Time
	Err         error
}

// NewTotalsCache creates an empty TotalsCache.
func NewTotalsCache() *TotalsCache {
	return &TotalsCache{values: make(map[string]entity.Nutrients)}
}

func cacheKey(date *time.Time) string {
	if date == nil {
		return allKey
	}
	return entity.FormatDate(*date)
}

func (c *TotalsCache) Get(_ context.Context, date *time.Time) (*entity.Nutrients, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, false, c.Err
	}
	v, ok := c.values[cacheKey(date)]
	if !ok {
		return nil, false, nil
	}
	c.Hits++
	return &v, true, nil
}

func (c *TotalsCache) Set(_ context.Context, date *time.Time, totals entity.Nutrients) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.values[cacheKey(date)] = totals
	return nil
}

func (c *TotalsCache) Invalidate(_ context.Context, dates ...time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	delete(c.values, allKey)
	for _, d := range dates {
		delete(c.values, cacheKey(&d))
		c.Invalidated = append(c.Invalidated, d)
	}
	return nil
}

// Clock is a settable adapter.Clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a Clock stopped at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to now.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
