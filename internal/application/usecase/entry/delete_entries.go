package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
)

// DeleteEntriesInput represents the input for batch entry deletion.
type DeleteEntriesInput struct {
	EntryIDs []uuid.UUID
}

// DeleteEntriesOutput represents the output of batch entry deletion.
type DeleteEntriesOutput struct {
	DeletedCount int64
	Skipped      []uuid.UUID // IDs that matched no entry
}

// DeleteEntriesUseCase handles batch entry deletion logic.
// Unknown IDs are skipped rather than failing the batch, and an empty batch is a no-op.
type DeleteEntriesUseCase struct {
	entryRepo adapter.EntryRepository
	cache     adapter.TotalsCache
}

// NewDeleteEntriesUseCase creates a new DeleteEntriesUseCase instance.
func NewDeleteEntriesUseCase(entryRepo adapter.EntryRepository, cache adapter.TotalsCache) *DeleteEntriesUseCase {
	return &DeleteEntriesUseCase{
		entryRepo: entryRepo,
		cache:     cache,
	}
}

// Execute performs the batch entry deletion.
func (uc *DeleteEntriesUseCase) Execute(ctx context.Context, input DeleteEntriesInput) (*DeleteEntriesOutput, error) {
	if len(input.EntryIDs) == 0 {
		return &DeleteEntriesOutput{}, nil
	}

	// Resolve which entries exist so their days can be invalidated
	entries, err := uc.entryRepo.FindByIDs(ctx, input.EntryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries: %w", err)
	}

	found := make(map[uuid.UUID]time.Time, len(entries))
	for _, e := range entries {
		found[e.ID] = e.Date
	}

	output := &DeleteEntriesOutput{}
	ids := make([]uuid.UUID, 0, len(found))
	for _, id := range input.EntryIDs {
		if _, ok := found[id]; !ok {
			output.Skipped = append(output.Skipped, id)
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return output, nil
	}

	deletedCount, err := uc.entryRepo.BulkDelete(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete entries: %w", err)
	}
	output.DeletedCount = deletedCount

	dates := make([]time.Time, 0, len(found))
	seen := make(map[time.Time]bool, len(found))
	for _, d := range found {
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	invalidateTotals(ctx, uc.cache, dates...)

	return output, nil
}
