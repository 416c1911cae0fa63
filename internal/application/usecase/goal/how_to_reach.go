package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// HowToReachInput represents the input for a goal quantity calculation.
type HowToReachInput struct {
	GoalID uuid.UUID
	FoodID uuid.UUID
}

// HowToReachOutput represents how many grams of a food meet a goal on their own.
type HowToReachOutput struct {
	Goal  *entity.Goal
	Food  *entity.Food
	Grams float64
}

// HowToReachUseCase computes value * reference_weight / nutrient for a goal and a food.
type HowToReachUseCase struct {
	goalRepo adapter.GoalRepository
	foodRepo adapter.FoodRepository
}

// NewHowToReachUseCase creates a new HowToReachUseCase instance.
func NewHowToReachUseCase(goalRepo adapter.GoalRepository, foodRepo adapter.FoodRepository) *HowToReachUseCase {
	return &HowToReachUseCase{
		goalRepo: goalRepo,
		foodRepo: foodRepo,
	}
}

// Execute performs the calculation.
func (uc *HowToReachUseCase) Execute(ctx context.Context, input HowToReachInput) (*HowToReachOutput, error) {
	goal, err := findGoal(ctx, uc.goalRepo, input.GoalID)
	if err != nil {
		return nil, err
	}

	food, err := uc.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalFoodNotFound,
				"food not found",
				domainerror.ErrFoodNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	perReference := food.Nutrients().Get(goal.Field)
	if perReference == 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeDivisionUndefined,
			fmt.Sprintf("%s has no %s", food.Name, goal.Field),
			domainerror.ErrDivisionUndefined,
		)
	}

	grams := decimal.NewFromInt(int64(goal.Value)).
		Mul(decimal.NewFromFloat(food.ReferenceWeight)).
		Div(decimal.NewFromFloat(perReference))

	return &HowToReachOutput{
		Goal:  goal,
		Food:  food,
		Grams: grams.InexactFloat64(),
	}, nil
}
