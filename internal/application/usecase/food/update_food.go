package food

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// UpdateFoodInput represents the input for food update.
// Only non-nil fields are replaced.
type UpdateFoodInput struct {
	FoodID          uuid.UUID
	Name            *string
	ReferenceWeight *float64
	Calories        *float64
	Protein         *float64
	Fat             *float64
	Carbs           *float64
	Source          *string
}

// UpdateFoodOutput represents the output of food update.
type UpdateFoodOutput struct {
	Food *entity.Food
}

// UpdateFoodUseCase handles food update logic.
// Entries already logged keep the values they were created with.
type UpdateFoodUseCase struct {
	foodRepo adapter.FoodRepository
}

// NewUpdateFoodUseCase creates a new UpdateFoodUseCase instance.
func NewUpdateFoodUseCase(foodRepo adapter.FoodRepository) *UpdateFoodUseCase {
	return &UpdateFoodUseCase{
		foodRepo: foodRepo,
	}
}

// Execute performs the food update.
func (uc *UpdateFoodUseCase) Execute(ctx context.Context, input UpdateFoodInput) (*UpdateFoodOutput, error) {
	// Find the existing food
	food, err := uc.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	name := food.Name
	if input.Name != nil {
		name = *input.Name
	}
	referenceWeight := food.ReferenceWeight
	if input.ReferenceWeight != nil {
		referenceWeight = *input.ReferenceWeight
	}
	values := food.Nutrients()
	if input.Calories != nil {
		values.Calories = *input.Calories
	}
	if input.Protein != nil {
		values.Protein = *input.Protein
	}
	if input.Fat != nil {
		values.Fat = *input.Fat
	}
	if input.Carbs != nil {
		values.Carbs = *input.Carbs
	}

	if err := validateFood(name, referenceWeight, values); err != nil {
		return nil, err
	}

	// Check if the new name already exists (excluding the current food)
	if name != food.Name {
		exists, err := uc.foodRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check food name existence: %w", err)
		}
		if exists {
			return nil, nameExistsError(name)
		}
	}

	food.Name = name
	food.ReferenceWeight = referenceWeight
	food.SetNutrients(values)
	if input.Source != nil {
		food.Source = input.Source
	}
	food.UpdatedAt = time.Now().UTC()

	if err := uc.foodRepo.Update(ctx, food); err != nil {
		if errors.Is(err, domainerror.ErrFoodNameExists) {
			return nil, nameExistsError(name)
		}
		return nil, fmt.Errorf("failed to update food: %w", err)
	}

	return &UpdateFoodOutput{
		Food: food,
	}, nil
}
