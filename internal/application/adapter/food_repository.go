// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// FoodRepository defines the interface for food catalog persistence operations.
type FoodRepository interface {
	// Create creates a new food in the database.
	Create(ctx context.Context, food *entity.Food) error

	// FindByID retrieves a food by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// FindAll retrieves every food ordered by name.
	FindAll(ctx context.Context) ([]*entity.Food, error)

	// Update updates an existing food in the database.
	Update(ctx context.Context, food *entity.Food) error

	// Delete removes a food from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName checks if a food with the exact name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Count returns the number of foods in the catalog.
	Count(ctx context.Context) (int64, error)
}
