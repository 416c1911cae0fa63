package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	FoodID      uuid.UUID
	Weight      float64
	Date        time.Time
	SubmittedAt *time.Time // Optional, defaults to now
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *entity.Entry
}

// CreateEntryUseCase handles entry creation logic.
type CreateEntryUseCase struct {
	entryRepo adapter.EntryRepository
	foodRepo  adapter.FoodRepository
	cache     adapter.TotalsCache
	clock     adapter.Clock
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	entryRepo adapter.EntryRepository,
	foodRepo adapter.FoodRepository,
	cache adapter.TotalsCache,
	clock adapter.Clock,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo: entryRepo,
		foodRepo:  foodRepo,
		cache:     cache,
		clock:     clock,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	submittedAt := uc.clock.Now()
	if input.SubmittedAt != nil {
		submittedAt = *input.SubmittedAt
	}

	entry, err := buildEntry(ctx, uc.foodRepo, input.FoodID, input.Weight, input.Date, submittedAt)
	if err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	invalidateTotals(ctx, uc.cache, entry.Date)

	return &CreateEntryOutput{
		Entry: entry,
	}, nil
}
