package food

import (
	"context"
	"fmt"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// ListFoodsInput represents the input for listing foods.
type ListFoodsInput struct{}

// ListFoodsOutput represents the output of listing foods.
type ListFoodsOutput struct {
	Foods []*entity.Food
}

// ListFoodsUseCase handles listing the food catalog ordered by name.
type ListFoodsUseCase struct {
	foodRepo adapter.FoodRepository
}

// NewListFoodsUseCase creates a new ListFoodsUseCase instance.
func NewListFoodsUseCase(foodRepo adapter.FoodRepository) *ListFoodsUseCase {
	return &ListFoodsUseCase{
		foodRepo: foodRepo,
	}
}

// Execute performs the food listing.
func (uc *ListFoodsUseCase) Execute(ctx context.Context, _ ListFoodsInput) (*ListFoodsOutput, error) {
	foods, err := uc.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	return &ListFoodsOutput{
		Foods: foods,
	}, nil
}
