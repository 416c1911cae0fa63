// Package totals contains nutrient aggregation use cases.
package totals

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// GetTotalsInput represents the input for aggregating entries.
type GetTotalsInput struct {
	Date *time.Time // nil aggregates the whole ledger
}

// GetTotalsOutput represents the aggregated nutrient totals.
type GetTotalsOutput struct {
	Date   *time.Time
	Totals entity.Nutrients
}

// GetTotalsUseCase sums the stored nutrients of entries.
// A day with no entries yields zero totals.
type GetTotalsUseCase struct {
	entryRepo adapter.EntryRepository
	cache     adapter.TotalsCache
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(entryRepo adapter.EntryRepository, cache adapter.TotalsCache) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		entryRepo: entryRepo,
		cache:     cache,
	}
}

// Execute performs the aggregation.
func (uc *GetTotalsUseCase) Execute(ctx context.Context, input GetTotalsInput) (*GetTotalsOutput, error) {
	var date *time.Time
	if input.Date != nil {
		d := entity.DateOf(*input.Date)
		date = &d
	}

	cached, ok, err := uc.cache.Get(ctx, date)
	if err != nil {
		slog.Warn("Failed to read cached totals", "error", err)
	}
	if ok {
		return &GetTotalsOutput{Date: date, Totals: *cached}, nil
	}

	var entries []*entity.Entry
	if date != nil {
		entries, err = uc.entryRepo.FindByDate(ctx, *date)
	} else {
		entries, err = uc.entryRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for totals: %w", err)
	}

	values := make([]entity.Nutrients, len(entries))
	for i, e := range entries {
		values[i] = e.Nutrients()
	}
	totals := entity.SumNutrients(values)

	if err := uc.cache.Set(ctx, date, totals); err != nil {
		slog.Warn("Failed to cache totals", "error", err)
	}

	return &GetTotalsOutput{
		Date:   date,
		Totals: totals,
	}, nil
}
