package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves every goal, active goals first.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// FindActive retrieves the active goals ordered by creation time.
	FindActive(ctx context.Context) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
