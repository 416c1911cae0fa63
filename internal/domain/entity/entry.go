package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used to store and parse entry dates.
const DateLayout = "2006-01-02"

// DateOf returns the calendar day of t as midnight UTC.
// The day is taken in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate formats a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Entry represents one logged consumption of a food.
// Nutrient amounts are computed once when the entry is built and are never
// recomputed from the food afterwards.
type Entry struct {
	ID          uuid.UUID
	FoodID      uuid.UUID
	Food        *Food // Populated on reads only
	Weight      float64
	Date        time.Time
	SubmittedAt time.Time
	Calories    float64
	Protein     float64
	Fat         float64
	Carbs       float64
}

// NewEntry creates a new Entry for weight grams of food eaten on date.
func NewEntry(food *Food, weight float64, date, submittedAt time.Time) *Entry {
	values := food.Scale(weight)

	return &Entry{
		ID:          uuid.New(),
		FoodID:      food.ID,
		Food:        food,
		Weight:      weight,
		Date:        DateOf(date),
		SubmittedAt: submittedAt.UTC(),
		Calories:    values.Calories,
		Protein:     values.Protein,
		Fat:         values.Fat,
		Carbs:       values.Carbs,
	}
}

// Nutrients returns the stored nutrient amounts of the entry.
func (e *Entry) Nutrients() Nutrients {
	return Nutrients{
		Calories: e.Calories,
		Protein:  e.Protein,
		Fat:      e.Fat,
		Carbs:    e.Carbs,
	}
}

// FoodName returns the name of the referenced food when it was loaded.
func (e *Entry) FoodName() string {
	if e.Food == nil {
		return ""
	}
	return e.Food.Name
}
