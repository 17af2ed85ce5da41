package evolution

import (
	"errors"
	"fmt"
)

// ValidationError represents a fatal input defect detected before any
// computation. The engine never produces partial results on invalid input.
type ValidationError struct {
	// Code identifies the defect category.
	Code ValidationErrorCode

	// Message is a human-readable description.
	Message string

	// Interval is the label of the offending interval, when known.
	Interval string

	// Theory is the offending theory name, for count/duplicate defects.
	Theory string
}

// ValidationErrorCode categorizes input validation failures.
type ValidationErrorCode string

const (
	// ErrCodeNegativeCount indicates a usage, paper, or phenomenon count below zero.
	ErrCodeNegativeCount ValidationErrorCode = "NEGATIVE_COUNT"

	// ErrCodeDuplicateTheory indicates the same theory name twice within one interval.
	ErrCodeDuplicateTheory ValidationErrorCode = "DUPLICATE_THEORY"

	// ErrCodeIntervalOrder indicates intervals not in strictly increasing chronological order.
	ErrCodeIntervalOrder ValidationErrorCode = "INTERVAL_ORDER"

	// ErrCodeIntervalBounds indicates an interval whose end year precedes its start year.
	ErrCodeIntervalBounds ValidationErrorCode = "INTERVAL_BOUNDS"
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Interval != "" && e.Theory != "":
		return fmt.Sprintf("%s: %s (interval=%s, theory=%s)", e.Code, e.Message, e.Interval, e.Theory)
	case e.Interval != "":
		return fmt.Sprintf("%s: %s (interval=%s)", e.Code, e.Message, e.Interval)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newNegativeCountError(interval, theory string) *ValidationError {
	return &ValidationError{
		Code:     ErrCodeNegativeCount,
		Message:  "counts must be non-negative",
		Interval: interval,
		Theory:   theory,
	}
}

func newDuplicateTheoryError(interval, theory string) *ValidationError {
	return &ValidationError{
		Code:     ErrCodeDuplicateTheory,
		Message:  "theory listed more than once in interval",
		Interval: interval,
		Theory:   theory,
	}
}

func newIntervalOrderError(interval string) *ValidationError {
	return &ValidationError{
		Code:     ErrCodeIntervalOrder,
		Message:  "intervals must be in strictly increasing chronological order",
		Interval: interval,
	}
}

func newIntervalBoundsError(interval string) *ValidationError {
	return &ValidationError{
		Code:     ErrCodeIntervalBounds,
		Message:  "interval end year precedes start year",
		Interval: interval,
	}
}
