package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// ToggleGoalInput represents the input for flipping a goal's active flag.
type ToggleGoalInput struct {
	GoalID uuid.UUID
}

// ToggleGoalOutput represents the output of a toggle.
type ToggleGoalOutput struct {
	Goal *entity.Goal
}

// ToggleGoalUseCase handles activating and deactivating goals.
type ToggleGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewToggleGoalUseCase creates a new ToggleGoalUseCase instance.
func NewToggleGoalUseCase(goalRepo adapter.GoalRepository) *ToggleGoalUseCase {
	return &ToggleGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleGoalUseCase) Execute(ctx context.Context, input ToggleGoalInput) (*ToggleGoalOutput, error) {
	goal, err := findGoal(ctx, uc.goalRepo, input.GoalID)
	if err != nil {
		return nil, err
	}

	goal.Toggle()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &ToggleGoalOutput{
		Goal: goal,
	}, nil
}
