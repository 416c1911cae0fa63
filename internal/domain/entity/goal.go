package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a daily target for one nutrient.
type Goal struct {
	ID        uuid.UUID
	Field     NutrientField
	Value     int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(field NutrientField, value int, active bool) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:        uuid.New(),
		Field:     field,
		Value:     value,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Toggle flips the active flag.
func (g *Goal) Toggle() {
	g.Active = !g.Active
	g.UpdatedAt = time.Now().UTC()
}

// Remaining returns how much of the goal is left given the consumed totals.
// A negative result means the goal was exceeded.
func (g *Goal) Remaining(totals Nutrients) float64 {
	return decimal.NewFromInt(int64(g.Value)).
		Sub(decimal.NewFromFloat(totals.Get(g.Field))).
		InexactFloat64()
}

// GoalProgress represents a goal evaluated against one day of totals.
type GoalProgress struct {
	Goal      *Goal
	Consumed  float64
	Remaining float64
}
