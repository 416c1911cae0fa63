package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
)

// ListAvailableDatesOutput represents the dates that have entries.
type ListAvailableDatesOutput struct {
	Dates []time.Time
}

// ListAvailableDatesUseCase lists the distinct days present in the ledger.
type ListAvailableDatesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListAvailableDatesUseCase creates a new ListAvailableDatesUseCase instance.
func NewListAvailableDatesUseCase(entryRepo adapter.EntryRepository) *ListAvailableDatesUseCase {
	return &ListAvailableDatesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the date listing.
func (uc *ListAvailableDatesUseCase) Execute(ctx context.Context) (*ListAvailableDatesOutput, error) {
	dates, err := uc.entryRepo.FindDistinctDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry dates: %w", err)
	}

	return &ListAvailableDatesOutput{
		Dates: dates,
	}, nil
}
