// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

// foodRepository implements the adapter.FoodRepository interface.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new food repository instance.
func NewFoodRepository(db *gorm.DB) adapter.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

// Create creates a new food in the database.
func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodModel := model.FoodFromEntity(food)
	result := r.db.WithContext(ctx).Create(foodModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrFoodNameExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a food by its ID.
func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodModel model.FoodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&foodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFoodNotFound
		}
		return nil, result.Error
	}
	return foodModel.ToEntity(), nil
}

// FindAll retrieves every food ordered by name.
func (r *foodRepository) FindAll(ctx context.Context) ([]*entity.Food, error) {
	var foodModels []model.FoodModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&foodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	foods := make([]*entity.Food, len(foodModels))
	for i := range foodModels {
		foods[i] = foodModels[i].ToEntity()
	}
	return foods, nil
}

// Update updates an existing food in the database.
func (r *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	foodModel := model.FoodFromEntity(food)
	result := r.db.WithContext(ctx).Save(foodModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrFoodNameExists
		}
		return result.Error
	}
	return nil
}

// Delete removes a food from the database.
func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FoodModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerror.ErrFoodReferenced
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFoodNotFound
	}
	return nil
}

// ExistsByName checks if a food with the exact name exists.
func (r *foodRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Count returns the number of foods in the catalog.
func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.FoodModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
