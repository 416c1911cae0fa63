package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalField is returned when the goal field is not a tracked nutrient.
	ErrInvalidGoalField = errors.New("invalid goal field")

	// ErrInvalidGoalValue is returned when the goal value is zero or negative.
	ErrInvalidGoalValue = errors.New("invalid goal value")

	// ErrDivisionUndefined is returned when a food has none of the goal's nutrient,
	// so no quantity of it can reach the goal.
	ErrDivisionUndefined = errors.New("division undefined for zero nutrient value")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound      GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalField  GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalValue  GoalErrorCode = "GOL-010003"
	ErrCodeDivisionUndefined GoalErrorCode = "GOL-010004"
	ErrCodeGoalFoodNotFound  GoalErrorCode = "GOL-010005"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
