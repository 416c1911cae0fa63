package adapter

import (
	"context"
	"time"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// TotalsCache defines a read-through cache for aggregated nutrient totals.
// A nil date addresses the whole-ledger totals.
type TotalsCache interface {
	// Get returns the cached totals and whether they were present.
	Get(ctx context.Context, date *time.Time) (*entity.Nutrients, bool, error)

	// Set stores totals for a date.
	Set(ctx context.Context, date *time.Time, totals entity.Nutrients) error

	// Invalidate drops the totals of the given dates and the whole-ledger totals.
	Invalidate(ctx context.Context, dates ...time.Time) error
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}
