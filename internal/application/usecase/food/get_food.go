package food

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// GetFoodInput represents the input for fetching a single food.
type GetFoodInput struct {
	FoodID uuid.UUID
}

// GetFoodOutput represents the output of fetching a single food.
type GetFoodOutput struct {
	Food *entity.Food
}

// GetFoodUseCase handles fetching a food by ID.
type GetFoodUseCase struct {
	foodRepo adapter.FoodRepository
}

// NewGetFoodUseCase creates a new GetFoodUseCase instance.
func NewGetFoodUseCase(foodRepo adapter.FoodRepository) *GetFoodUseCase {
	return &GetFoodUseCase{
		foodRepo: foodRepo,
	}
}

// Execute performs the food lookup.
func (uc *GetFoodUseCase) Execute(ctx context.Context, input GetFoodInput) (*GetFoodOutput, error) {
	food, err := uc.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	return &GetFoodOutput{
		Food: food,
	}, nil
}
