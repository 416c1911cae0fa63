package food

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

// DeleteFoodsInput represents the input for batch food deletion.
type DeleteFoodsInput struct {
	FoodIDs []uuid.UUID
}

// SkippedFood describes a food left in place by a batch deletion.
type SkippedFood struct {
	FoodID uuid.UUID
	Err    error
}

// DeleteFoodsOutput represents the output of batch food deletion.
type DeleteFoodsOutput struct {
	DeletedIDs []uuid.UUID
	Skipped    []SkippedFood
}

// DeleteFoodsUseCase deletes several foods, skipping the ones that are
// referenced by entries or no longer exist.
type DeleteFoodsUseCase struct {
	deleteFood *DeleteFoodUseCase
}

// NewDeleteFoodsUseCase creates a new DeleteFoodsUseCase instance.
func NewDeleteFoodsUseCase(deleteFood *DeleteFoodUseCase) *DeleteFoodsUseCase {
	return &DeleteFoodsUseCase{
		deleteFood: deleteFood,
	}
}

// Execute performs the batch deletion.
// Referenced and unknown foods are reported in Skipped; any other failure stops the batch.
func (uc *DeleteFoodsUseCase) Execute(ctx context.Context, input DeleteFoodsInput) (*DeleteFoodsOutput, error) {
	output := &DeleteFoodsOutput{
		DeletedIDs: make([]uuid.UUID, 0, len(input.FoodIDs)),
	}

	for _, id := range input.FoodIDs {
		_, err := uc.deleteFood.Execute(ctx, DeleteFoodInput{FoodID: id})
		if err == nil {
			output.DeletedIDs = append(output.DeletedIDs, id)
			continue
		}

		if errors.Is(err, domainerror.ErrFoodReferenced) || errors.Is(err, domainerror.ErrFoodNotFound) {
			slog.Info("Skipping food deletion", "food_id", id, "error", err)
			output.Skipped = append(output.Skipped, SkippedFood{FoodID: id, Err: err})
			continue
		}

		return output, err
	}

	return output, nil
}
