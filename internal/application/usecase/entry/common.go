// Package entry contains entry ledger use cases.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// buildEntry validates the weight, loads the food and snapshots the scaled nutrients.
// Nothing is written.
func buildEntry(
	ctx context.Context,
	foodRepo adapter.FoodRepository,
	foodID uuid.UUID,
	weight float64,
	date time.Time,
	submittedAt time.Time,
) (*entity.Entry, error) {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidWeight,
			"weight must be a finite number greater than zero",
			domainerror.ErrInvalidWeight,
		)
	}

	food, err := foodRepo.FindByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryFoodNotFound,
				"food for entry not found",
				domainerror.ErrEntryFoodNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	return entity.NewEntry(food, weight, date, submittedAt), nil
}

// invalidateTotals drops cached totals for the given dates.
// Cache failures are logged and never fail the caller.
func invalidateTotals(ctx context.Context, cache adapter.TotalsCache, dates ...time.Time) {
	if err := cache.Invalidate(ctx, dates...); err != nil {
		slog.Warn("Failed to invalidate cached totals", "dates", len(dates), "error", err)
	}
}
