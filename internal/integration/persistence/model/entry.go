package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
// Date holds the calendar day as YYYY-MM-DD so equality filters hit the index directly.
type EntryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FoodID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Food        *FoodModel `gorm:"foreignKey:FoodID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Weight      float64    `gorm:"not null"`
	Date        string     `gorm:"type:varchar(10);not null;index"`
	SubmittedAt time.Time  `gorm:"not null;index"`
	Calories    float64    `gorm:"not null"`
	Protein     float64    `gorm:"not null"`
	Fat         float64    `gorm:"not null"`
	Carbs       float64    `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	// Date is always written by EntryFromEntity in entity.DateLayout.
	date, _ := entity.ParseDate(m.Date)

	var food *entity.Food
	if m.Food != nil {
		food = m.Food.ToEntity()
	}

	return &entity.Entry{
		ID:          m.ID,
		FoodID:      m.FoodID,
		Food:        food,
		Weight:      m.Weight,
		Date:        date,
		SubmittedAt: m.SubmittedAt.UTC(),
		Calories:    m.Calories,
		Protein:     m.Protein,
		Fat:         m.Fat,
		Carbs:       m.Carbs,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
// The Food association is left empty so saving an entry never writes the food.
func EntryFromEntity(e *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:          e.ID,
		FoodID:      e.FoodID,
		Weight:      e.Weight,
		Date:        entity.FormatDate(e.Date),
		SubmittedAt: e.SubmittedAt.UTC(),
		Calories:    e.Calories,
		Protein:     e.Protein,
		Fat:         e.Fat,
		Carbs:       e.Carbs,
	}
}
