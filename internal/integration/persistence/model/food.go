// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// FoodModel represents the foods table in the database.
type FoodModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	ReferenceWeight float64   `gorm:"not null"`
	Calories        float64   `gorm:"not null"`
	Protein         float64   `gorm:"not null"`
	Fat             float64   `gorm:"not null"`
	Carbs           float64   `gorm:"not null"`
	Source          *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the FoodModel.
func (FoodModel) TableName() string {
	return "foods"
}

// ToEntity converts a FoodModel to a domain Food entity.
func (m *FoodModel) ToEntity() *entity.Food {
	return &entity.Food{
		ID:              m.ID,
		Name:            m.Name,
		ReferenceWeight: m.ReferenceWeight,
		Calories:        m.Calories,
		Protein:         m.Protein,
		Fat:             m.Fat,
		Carbs:           m.Carbs,
		Source:          m.Source,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FoodFromEntity creates a FoodModel from a domain Food entity.
func FoodFromEntity(food *entity.Food) *FoodModel {
	return &FoodModel{
		ID:              food.ID,
		Name:            food.Name,
		ReferenceWeight: food.ReferenceWeight,
		Calories:        food.Calories,
		Protein:         food.Protein,
		Fat:             food.Fat,
		Carbs:           food.Carbs,
		Source:          food.Source,
		CreatedAt:       food.CreatedAt,
		UpdatedAt:       food.UpdatedAt,
	}
}
