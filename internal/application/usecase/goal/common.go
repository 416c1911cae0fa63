// Package goal contains goal tracking use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// findGoal loads a goal and maps a missing row to a coded error.
func findGoal(ctx context.Context, goalRepo adapter.GoalRepository, id uuid.UUID) (*entity.Goal, error) {
	goal, err := goalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}

func invalidValueError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInvalidGoalValue,
		"goal value must be greater than zero",
		domainerror.ErrInvalidGoalValue,
	)
}
