package errors

import (
	"errors"
	"fmt"

	"simlab/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeEmptyInput        = "EMPTY_INPUT"
	CodeDegenerateInput   = "DEGENERATE_INPUT"
	CodeDistributionError = "DISTRIBUTION_ERROR"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

// FromDomain maps a domain error onto a coded AppError for the API boundary.
func FromDomain(err error) *AppError {
	if err == nil {
		return nil
	}

	code := CodeInternalError
	switch {
	case core.IsInvalidParameter(err):
		code = CodeInvalidParameter
	case core.IsEmptyInput(err):
		code = CodeEmptyInput
	case core.IsDegenerateInput(err):
		code = CodeDegenerateInput
	case errors.Is(err, core.ErrDistribution):
		code = CodeDistributionError
	}

	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}
