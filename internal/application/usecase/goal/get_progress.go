package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/application/usecase/totals"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// TotalsCalculator computes nutrient totals for a day.
type TotalsCalculator interface {
	Execute(ctx context.Context, input totals.GetTotalsInput) (*totals.GetTotalsOutput, error)
}

// GetProgressInput represents the input for evaluating goals.
type GetProgressInput struct {
	Date *time.Time // Optional, defaults to today
}

// GetProgressOutput represents the evaluated goals of a day.
type GetProgressOutput struct {
	Date   time.Time
	Totals entity.Nutrients
	Items  []entity.GoalProgress
	// Remaining maps each field with an active goal to what is left.
	// When several active goals share a field the most recently created one wins.
	Remaining map[entity.NutrientField]float64
}

// GetProgressUseCase compares active goals with a day's totals.
type GetProgressUseCase struct {
	goalRepo adapter.GoalRepository
	totals   TotalsCalculator
	clock    adapter.Clock
}

// NewGetProgressUseCase creates a new GetProgressUseCase instance.
func NewGetProgressUseCase(goalRepo adapter.GoalRepository, totals TotalsCalculator, clock adapter.Clock) *GetProgressUseCase {
	return &GetProgressUseCase{
		goalRepo: goalRepo,
		totals:   totals,
		clock:    clock,
	}
}

// Execute performs the evaluation.
func (uc *GetProgressUseCase) Execute(ctx context.Context, input GetProgressInput) (*GetProgressOutput, error) {
	date := entity.DateOf(uc.clock.Now())
	if input.Date != nil {
		date = entity.DateOf(*input.Date)
	}

	goals, err := uc.goalRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active goals: %w", err)
	}

	result, err := uc.totals.Execute(ctx, totals.GetTotalsInput{Date: &date})
	if err != nil {
		return nil, err
	}

	output := &GetProgressOutput{
		Date:      date,
		Totals:    result.Totals,
		Items:     make([]entity.GoalProgress, 0, len(goals)),
		Remaining: make(map[entity.NutrientField]float64, len(goals)),
	}

	for _, g := range goals {
		remaining := g.Remaining(result.Totals)
		output.Items = append(output.Items, entity.GoalProgress{
			Goal:      g,
			Consumed:  result.Totals.Get(g.Field),
			Remaining: remaining,
		})
		output.Remaining[g.Field] = remaining
	}

	return output, nil
}
