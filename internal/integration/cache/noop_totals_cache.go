package cache

import (
	"context"
	"time"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// noopTotalsCache never stores anything, so every read is a miss.
type noopTotalsCache struct{}

// NewNoopTotalsCache creates a totals cache that is always empty.
func NewNoopTotalsCache() adapter.TotalsCache {
	return noopTotalsCache{}
}

func (noopTotalsCache) Get(context.Context, *time.Time) (*entity.Nutrients, bool, error) {
	return nil, false, nil
}

func (noopTotalsCache) Set(context.Context, *time.Time, entity.Nutrients) error {
	return nil
}

func (noopTotalsCache) Invalidate(context.Context, ...time.Time) error {
	return nil
}
