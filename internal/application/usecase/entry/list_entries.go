package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing the entries of a day.
type ListEntriesInput struct {
	Date time.Time
}

// ListEntriesOutput represents the output of listing the entries of a day.
type ListEntriesOutput struct {
	Date    time.Time
	Entries []*entity.Entry
}

// ListEntriesUseCase lists one day of entries in the order they were logged.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry listing.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	date := entity.DateOf(input.Date)

	entries, err := uc.entryRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Date:    date,
		Entries: entries,
	}, nil
}
