package entry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// PreviewEntryInput represents the input for an entry preview.
type PreviewEntryInput struct {
	FoodID uuid.UUID
	Weight float64
	Date   time.Time
}

// PreviewEntryOutput represents the output of an entry preview.
type PreviewEntryOutput struct {
	Entry *entity.Entry
}

// PreviewEntryUseCase computes an entry exactly as CreateEntryUseCase would, without saving it.
type PreviewEntryUseCase struct {
	foodRepo adapter.FoodRepository
	clock    adapter.Clock
}

// NewPreviewEntryUseCase creates a new PreviewEntryUseCase instance.
func NewPreviewEntryUseCase(foodRepo adapter.FoodRepository, clock adapter.Clock) *PreviewEntryUseCase {
	return &PreviewEntryUseCase{
		foodRepo: foodRepo,
		clock:    clock,
	}
}

// Execute performs the preview.
func (uc *PreviewEntryUseCase) Execute(ctx context.Context, input PreviewEntryInput) (*PreviewEntryOutput, error) {
	entry, err := buildEntry(ctx, uc.foodRepo, input.FoodID, input.Weight, input.Date, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &PreviewEntryOutput{
		Entry: entry,
	}, nil
}
