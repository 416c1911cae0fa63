package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, e *entity.Entry) error {
	entryModel := model.EntryFromEntity(e)
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDs retrieves the entries matching the given IDs. Unknown IDs are ignored.
func (r *entryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Entry, error) {
	if len(ids) == 0 {
		return []*entity.Entry{}, nil
	}

	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntries(entryModels), nil
}

// FindByDate retrieves the entries of one day ordered by submission time, oldest first.
func (r *entryRepository) FindByDate(ctx context.Context, date time.Time) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Preload("Food").
		Where("date = ?", entity.FormatDate(date)).
		Order("submitted_at ASC").
		Order("id ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntries(entryModels), nil
}

// FindAll retrieves every entry ordered by submission time, oldest first.
// The Food association is not loaded; entries carry their own nutrient snapshot.
func (r *entryRepository) FindAll(ctx context.Context) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Order("submitted_at ASC").
		Order("id ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntries(entryModels), nil
}

// FindDistinctDates retrieves the dates that have at least one entry, ascending.
func (r *entryRepository) FindDistinctDates(ctx context.Context) ([]time.Time, error) {
	var raw []string
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Distinct().
		Order("date ASC").
		Pluck("date", &raw)
	if result.Error != nil {
		return nil, result.Error
	}

	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := entity.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse entry date %q: %w", s, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// CountByFood returns the number of entries referencing a food.
func (r *entryRepository) CountByFood(ctx context.Context, foodID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("food_id = ?", foodID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// BulkDelete removes the entries with the given IDs and returns how many were deleted.
func (r *entryRepository) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.EntryModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toEntries(entryModels []model.EntryModel) []*entity.Entry {
	entries := make([]*entity.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries
}
