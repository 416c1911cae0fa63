package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// EntryRepository defines the interface for entry ledger persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByIDs retrieves the entries matching the given IDs. Unknown IDs are ignored.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Entry, error)

	// FindByDate retrieves the entries of one day ordered by submission time, oldest first.
	FindByDate(ctx context.Context, date time.Time) ([]*entity.Entry, error)

	// FindAll retrieves every entry ordered by submission time, oldest first.
	// Food is left nil on the returned entries.
	FindAll(ctx context.Context) ([]*entity.Entry, error)

	// FindDistinctDates retrieves the dates that have at least one entry, ascending.
	FindDistinctDates(ctx context.Context) ([]time.Time, error)

	// CountByFood returns the number of entries referencing a food.
	CountByFood(ctx context.Context, foodID uuid.UUID) (int64, error)

	// BulkDelete removes the entries with the given IDs and returns how many were deleted.
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
