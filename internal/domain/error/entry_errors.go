package error

import "errors"

// Entry domain errors.
var (
	// ErrInvalidWeight is returned when the consumed weight is zero or negative.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrEntryNotFound is returned when an entry is not found in the ledger.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryFoodNotFound is returned when the food for a new entry does not exist.
	ErrEntryFoodNotFound = errors.New("food for entry not found")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWeight     EntryErrorCode = "ENT-010001"
	ErrCodeEntryNotFound     EntryErrorCode = "ENT-010002"
	ErrCodeEntryFoodNotFound EntryErrorCode = "ENT-010003"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
