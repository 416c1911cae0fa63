// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the local wall clock.
type systemClock struct{}

// NewSystemClock creates a clock that reports the current local time.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}
