package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Loading errors (fatal for the whole check)
	ErrInputNotFound = errors.New("input dataset not found")

	// Comparison errors (isolated per feature or per check)
	ErrSchemaMismatch   = errors.New("no comparable columns after exclusion")
	ErrDegenerateSample = errors.New("sample empty after missing-value removal")
	ErrInsufficientData = errors.New("insufficient data for comparison")

	// Persistence errors (report stays available in memory)
	ErrWriteFailure = errors.New("report artifact write failed")

	// Validation errors
	ErrInvalidThreshold = errors.New("threshold outside (0, 1]")
)

// Error constructors with context
func NewInputNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrInputNotFound, path)
}

func NewDegenerateSampleError(feature FeatureName, side string) error {
	return fmt.Errorf("%w: feature %s (%s)", ErrDegenerateSample, feature, side)
}

func NewWriteFailureError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
}

// Error checking helpers
func IsInputNotFound(err error) bool {
	return errors.Is(err, ErrInputNotFound)
}

func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}

func IsDegenerateSample(err error) bool {
	return errors.Is(err, ErrDegenerateSample)
}

func IsWriteFailure(err error) bool {
	return errors.Is(err, ErrWriteFailure)
}
