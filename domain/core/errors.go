package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEmptyInput       = errors.New("empty input")
	ErrDegenerateInput  = errors.New("degenerate input")

	// Math library errors
	ErrDistribution = errors.New("distribution construction failed")
)

// Error constructors with context
func NewParameterError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, field, reason)
}

func NewEmptyInputError(what string) error {
	return fmt.Errorf("%w: %s", ErrEmptyInput, what)
}

func NewDegenerateError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, reason)
}

func NewDistributionError(name string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrDistribution, name, cause)
}

// Error checking helpers
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

func IsDegenerateInput(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrDegenerateInput)
}
