package growth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a numeric input is malformed or out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTargetUnreachable is returned by PeriodsToTarget when the target is not
	// reached within MaxPeriods.
	ErrTargetUnreachable = errors.New("target unreachable within cap")

	// ErrDivisionByZero is returned when the annuity formula has a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
)

// ParamError names the input field that failed validation.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParameter, e.Field, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

func invalid(field, format string, args ...any) error {
	return &ParamError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
