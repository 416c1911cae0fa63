// Package food contains food catalog use cases.
package food

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// MaxFoodNameLength is the maximum allowed length for food names.
const MaxFoodNameLength = 50

// CreateFoodInput represents the input for food creation.
type CreateFoodInput struct {
	Name            string
	ReferenceWeight *float64 // Optional, defaults to entity.DefaultReferenceWeight
	Calories        float64
	Protein         float64
	Fat             float64
	Carbs           float64
	Source          *string // Optional
}

// CreateFoodOutput represents the output of food creation.
type CreateFoodOutput struct {
	Food *entity.Food
}

// CreateFoodUseCase handles food creation logic.
type CreateFoodUseCase struct {
	foodRepo adapter.FoodRepository
}

// NewCreateFoodUseCase creates a new CreateFoodUseCase instance.
func NewCreateFoodUseCase(foodRepo adapter.FoodRepository) *CreateFoodUseCase {
	return &CreateFoodUseCase{
		foodRepo: foodRepo,
	}
}

// Execute performs the food creation.
func (uc *CreateFoodUseCase) Execute(ctx context.Context, input CreateFoodInput) (*CreateFoodOutput, error) {
	// Apply default reference weight
	referenceWeight := entity.DefaultReferenceWeight
	if input.ReferenceWeight != nil {
		referenceWeight = *input.ReferenceWeight
	}

	values := entity.Nutrients{
		Calories: input.Calories,
		Protein:  input.Protein,
		Fat:      input.Fat,
		Carbs:    input.Carbs,
	}

	if err := validateFood(input.Name, referenceWeight, values); err != nil {
		return nil, err
	}

	// Check that the name is not taken
	exists, err := uc.foodRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check food name existence: %w", err)
	}
	if exists {
		return nil, nameExistsError(input.Name)
	}

	food := entity.NewFood(input.Name, referenceWeight, values, input.Source)

	if err := uc.foodRepo.Create(ctx, food); err != nil {
		if errors.Is(err, domainerror.ErrFoodNameExists) {
			return nil, nameExistsError(input.Name)
		}
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	return &CreateFoodOutput{
		Food: food,
	}, nil
}

func nameExistsError(name string) error {
	return domainerror.NewFoodError(
		domainerror.ErrCodeFoodNameExists,
		fmt.Sprintf("a food named %q already exists", name),
		domainerror.ErrFoodNameExists,
	)
}

func notFoundError() error {
	return domainerror.NewFoodError(
		domainerror.ErrCodeFoodNotFound,
		"food not found",
		domainerror.ErrFoodNotFound,
	)
}

// validateFood checks the invariants shared by creation and update.
func validateFood(name string, referenceWeight float64, values entity.Nutrients) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewFoodError(
			domainerror.ErrCodeFoodNameRequired,
			"food name is required",
			domainerror.ErrFoodNameRequired,
		)
	}

	if utf8.RuneCountInString(name) > MaxFoodNameLength {
		return domainerror.NewFoodError(
			domainerror.ErrCodeFoodNameTooLong,
			fmt.Sprintf("food name must not exceed %d characters", MaxFoodNameLength),
			domainerror.ErrFoodNameTooLong,
		)
	}

	if referenceWeight <= 0 || !isFinite(referenceWeight) {
		return domainerror.NewFoodError(
			domainerror.ErrCodeInvalidReferenceWeight,
			"reference weight must be a finite number greater than zero",
			domainerror.ErrInvalidReferenceWeight,
		)
	}

	for _, field := range entity.NutrientFields {
		if v := values.Get(field); v < 0 || !isFinite(v) {
			return domainerror.NewFoodError(
				domainerror.ErrCodeInvalidNutrientValue,
				fmt.Sprintf("%s must be a finite, non-negative number", field),
				domainerror.ErrInvalidNutrientValue,
			)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
