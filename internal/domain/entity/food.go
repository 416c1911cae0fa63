package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultReferenceWeight is the gram quantity nutrient values refer to when none is given.
const DefaultReferenceWeight = 100.0

// Food represents a reference nutrient profile in the catalog.
// Nutrient amounts are given per ReferenceWeight grams.
type Food struct {
	ID              uuid.UUID
	Name            string
	ReferenceWeight float64
	Calories        float64
	Protein         float64
	Fat             float64
	Carbs           float64
	Source          *string // Optional
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewFood creates a new Food entity.
func NewFood(name string, referenceWeight float64, values Nutrients, source *string) *Food {
	now := time.Now().UTC()

	return &Food{
		ID:              uuid.New(),
		Name:            name,
		ReferenceWeight: referenceWeight,
		Calories:        values.Calories,
		Protein:         values.Protein,
		Fat:             values.Fat,
		Carbs:           values.Carbs,
		Source:          source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Nutrients returns the reference nutrient values of the food.
func (f *Food) Nutrients() Nutrients {
	return Nutrients{
		Calories: f.Calories,
		Protein:  f.Protein,
		Fat:      f.Fat,
		Carbs:    f.Carbs,
	}
}

// SetNutrients replaces the reference nutrient values of the food.
func (f *Food) SetNutrients(values Nutrients) {
	f.Calories = values.Calories
	f.Protein = values.Protein
	f.Fat = values.Fat
	f.Carbs = values.Carbs
}

// Scale returns the nutrient amounts for weight grams of the food,
// that is each reference value multiplied by weight / ReferenceWeight.
func (f *Food) Scale(weight float64) Nutrients {
	if weight == f.ReferenceWeight {
		return f.Nutrients()
	}
	if f.ReferenceWeight <= 0 {
		return Nutrients{}
	}

	w := decimal.NewFromFloat(weight)
	ref := decimal.NewFromFloat(f.ReferenceWeight)
	scale := func(v float64) float64 {
		return decimal.NewFromFloat(v).Mul(w).Div(ref).InexactFloat64()
	}

	return Nutrients{
		Calories: scale(f.Calories),
		Protein:  scale(f.Protein),
		Fat:      scale(f.Fat),
		Carbs:    scale(f.Carbs),
	}
}
