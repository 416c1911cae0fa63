package error_test

import (
	"errors"
	"fmt"
	"testing"

	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

func TestDomainErrors_Unwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "food error",
			err:      domainerror.NewFoodError(domainerror.ErrCodeFoodNameExists, "food name already exists", domainerror.ErrFoodNameExists),
			sentinel: domainerror.ErrFoodNameExists,
			message:  "food name already exists: food name already exists",
		},
		{
			name:     "entry error",
			err:      domainerror.NewEntryError(domainerror.ErrCodeInvalidWeight, "weight must be greater than zero", domainerror.ErrInvalidWeight),
			sentinel: domainerror.ErrInvalidWeight,
			message:  "weight must be greater than zero: invalid weight",
		},
		{
			name:     "goal error",
			err:      domainerror.NewGoalError(domainerror.ErrCodeInvalidGoalField, "unknown field", domainerror.ErrInvalidGoalField),
			sentinel: domainerror.ErrInvalidGoalField,
			message:  "unknown field: invalid goal field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("expected errors.Is to match %v", tt.sentinel)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestFoodError_As(t *testing.T) {
	err := fmt.Errorf("create: %w",
		domainerror.NewFoodError(domainerror.ErrCodeFoodReferenced, "food is still used", domainerror.ErrFoodReferenced))

	var foodErr *domainerror.FoodError
	if !errors.As(err, &foodErr) {
		t.Fatal("expected errors.As to find a FoodError")
	}
	if foodErr.Code != domainerror.ErrCodeFoodReferenced {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeFoodReferenced, foodErr.Code)
	}
}

func TestDomainErrors_NilCause(t *testing.T) {
	err := domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", nil)
	if err.Error() != "goal not found" {
		t.Errorf("expected bare message, got %q", err.Error())
	}
	if errors.Unwrap(err) != nil {
		t.Error("expected no wrapped error")
	}
}
