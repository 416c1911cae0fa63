// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NutrientField identifies one of the tracked nutrients.
type NutrientField string

const (
	NutrientCalories NutrientField = "calories"
	NutrientProtein  NutrientField = "protein"
	NutrientFat      NutrientField = "fat"
	NutrientCarbs    NutrientField = "carbs"
)

// NutrientFields lists every tracked nutrient in display order.
var NutrientFields = []NutrientField{
	NutrientCalories,
	NutrientProtein,
	NutrientFat,
	NutrientCarbs,
}

// IsValid reports whether f is one of the tracked nutrients.
func (f NutrientField) IsValid() bool {
	switch f {
	case NutrientCalories, NutrientProtein, NutrientFat, NutrientCarbs:
		return true
	}
	return false
}

// Label returns the capitalized name used in listings.
func (f NutrientField) Label() string {
	if f == "" {
		return ""
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Nutrients holds the four tracked nutrient amounts.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Get returns the amount for a single field. Unknown fields yield zero.
func (n Nutrients) Get(field NutrientField) float64 {
	switch field {
	case NutrientCalories:
		return n.Calories
	case NutrientProtein:
		return n.Protein
	case NutrientFat:
		return n.Fat
	case NutrientCarbs:
		return n.Carbs
	}
	return 0
}

// IsZero reports whether every amount is zero.
func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}

// SumNutrients adds up the given amounts exactly, so the result does not
// depend on the order of the input.
func SumNutrients(items []Nutrients) Nutrients {
	calories := decimal.Zero
	protein := decimal.Zero
	fat := decimal.Zero
	carbs := decimal.Zero

	for _, n := range items {
		calories = calories.Add(decimal.NewFromFloat(n.Calories))
		protein = protein.Add(decimal.NewFromFloat(n.Protein))
		fat = fat.Add(decimal.NewFromFloat(n.Fat))
		carbs = carbs.Add(decimal.NewFromFloat(n.Carbs))
	}

	return Nutrients{
		Calories: calories.InexactFloat64(),
		Protein:  protein.InexactFloat64(),
		Fat:      fat.InexactFloat64(),
		Carbs:    carbs.InexactFloat64(),
	}
}
