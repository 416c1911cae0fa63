package food

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// DeleteFoodInput represents the input for food deletion.
type DeleteFoodInput struct {
	FoodID uuid.UUID
}

// DeleteFoodOutput represents the output of food deletion.
type DeleteFoodOutput struct {
	Success bool
}

// DeleteFoodUseCase handles food deletion logic.
type DeleteFoodUseCase struct {
	foodRepo  adapter.FoodRepository
	entryRepo adapter.EntryRepository
}

// NewDeleteFoodUseCase creates a new DeleteFoodUseCase instance.
func NewDeleteFoodUseCase(foodRepo adapter.FoodRepository, entryRepo adapter.EntryRepository) *DeleteFoodUseCase {
	return &DeleteFoodUseCase{
		foodRepo:  foodRepo,
		entryRepo: entryRepo,
	}
}

// Execute performs the food deletion.
func (uc *DeleteFoodUseCase) Execute(ctx context.Context, input DeleteFoodInput) (*DeleteFoodOutput, error) {
	// Find the existing food
	food, err := uc.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	// Refuse while entries still reference the food
	count, err := uc.entryRepo.CountByFood(ctx, food.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count food entries: %w", err)
	}
	if count > 0 {
		return nil, referencedError(food.Name, count)
	}

	if err := uc.foodRepo.Delete(ctx, food.ID); err != nil {
		if errors.Is(err, domainerror.ErrFoodReferenced) {
			return nil, referencedError(food.Name, count)
		}
		return nil, fmt.Errorf("failed to delete food: %w", err)
	}

	return &DeleteFoodOutput{
		Success: true,
	}, nil
}

func referencedError(name string, count int64) error {
	message := fmt.Sprintf("food %q is used by existing entries", name)
	if count > 0 {
		message = fmt.Sprintf("food %q is used by %d entries", name, count)
	}
	return domainerror.NewFoodError(
		domainerror.ErrCodeFoodReferenced,
		message,
		domainerror.ErrFoodReferenced,
	)
}
