// Package error defines domain-specific errors for the Nutrition Tracker application.
package error

import "errors"

// Food domain errors.
var (
	// ErrFoodNotFound is returned when a food is not found in the catalog.
	ErrFoodNotFound = errors.New("food not found")

	// ErrFoodNameExists is returned when another food already uses the name.
	ErrFoodNameExists = errors.New("food name already exists")

	// ErrFoodNameRequired is returned when the food name is blank.
	ErrFoodNameRequired = errors.New("food name is required")

	// ErrFoodNameTooLong is returned when the food name exceeds the maximum length.
	ErrFoodNameTooLong = errors.New("food name too long")

	// ErrInvalidReferenceWeight is returned when the reference weight is zero or negative.
	ErrInvalidReferenceWeight = errors.New("invalid reference weight")

	// ErrInvalidNutrientValue is returned when a nutrient amount is negative.
	ErrInvalidNutrientValue = errors.New("invalid nutrient value")

	// ErrFoodReferenced is returned when deleting a food that entries still reference.
	ErrFoodReferenced = errors.New("food is referenced by entries")

	// ErrInvalidFoodImport is returned when an import file cannot be decoded.
	ErrInvalidFoodImport = errors.New("invalid food import")
)

// FoodErrorCode defines error codes for food errors.
// Format: FOD-XXYYYY where XX is category and YYYY is specific error.
type FoodErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFoodNotFound           FoodErrorCode = "FOD-010001"
	ErrCodeFoodNameExists         FoodErrorCode = "FOD-010002"
	ErrCodeFoodNameRequired       FoodErrorCode = "FOD-010003"
	ErrCodeInvalidReferenceWeight FoodErrorCode = "FOD-010004"
	ErrCodeInvalidNutrientValue   FoodErrorCode = "FOD-010005"
	ErrCodeFoodReferenced         FoodErrorCode = "FOD-010006"
	ErrCodeInvalidFoodImport      FoodErrorCode = "FOD-010007"
	ErrCodeFoodNameTooLong        FoodErrorCode = "FOD-010008"
)

// FoodError represents a food error with code and message.
type FoodError struct {
	Code    FoodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FoodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FoodError) Unwrap() error {
	return e.Err
}

// NewFoodError creates a new FoodError with the given code and message.
func NewFoodError(code FoodErrorCode, message string, err error) *FoodError {
	return &FoodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
