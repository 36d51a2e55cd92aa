package shift

import (
	"errors"
	"fmt"
	"strings"
)

// Precondition failures. Each typed error below wraps exactly one of these.
var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrInvalidRangeType = errors.New("shift bound is not an integer")
	ErrInvalidRange     = errors.New("min_shift must be less than or equal to max_shift")
)

// Per-value parse failures. These never escape ShiftColumn; they are logged.
var (
	ErrEmptyValue  = errors.New("empty date value")
	ErrUnparseable = errors.New("unrecognized date format")
)

// ColumnNotFoundError is returned when the target column is absent.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q (available: %s)", ErrColumnNotFound, e.Column, strings.Join(e.Available, ", "))
}

func (e *ColumnNotFoundError) Unwrap() error { return ErrColumnNotFound }

// InvalidRangeTypeError is returned when a bound is not a whole number.
type InvalidRangeTypeError struct {
	Bound string // "min_shift" or "max_shift"
	Value string
	Err   error
}

func (e *InvalidRangeTypeError) Error() string {
	return fmt.Sprintf("%s: %s=%q", ErrInvalidRangeType, e.Bound, e.Value)
}

func (e *InvalidRangeTypeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidRangeType}
	}
	return []error{ErrInvalidRangeType, e.Err}
}

// InvalidRangeError is returned when Min > Max.
type InvalidRangeError struct {
	Min, Max int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: min_shift=%d max_shift=%d", ErrInvalidRange, e.Min, e.Max)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }
