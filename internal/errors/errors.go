package errors

import (
	"errors"
	"fmt"

	"godrift/domain/core"
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

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeInputNotFound    = "INPUT_NOT_FOUND"
	CodeSchemaMismatch   = "SCHEMA_MISMATCH"
	CodeDegenerateSample = "DEGENERATE_SAMPLE"
	CodeWriteFailure     = "WRITE_FAILURE"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors. Each carries the matching domain sentinel so
// callers can branch with errors.Is instead of matching message text.

func InputNotFound(path string) *AppError {
	return &AppError{
		Code:    CodeInputNotFound,
		Message: fmt.Sprintf("dataset %s cannot be resolved", path),
		Cause:   core.NewInputNotFoundError(path),
	}
}

func SchemaMismatch() *AppError {
	return &AppError{
		Code:    CodeSchemaMismatch,
		Message: "reference and production share no comparable columns",
		Cause:   core.ErrSchemaMismatch,
	}
}

func WriteFailure(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeWriteFailure,
		Message: fmt.Sprintf("failed to persist report to %s", path),
		Cause:   core.NewWriteFailureError(path, cause),
	}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

func DatabaseError(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeDatabaseError,
		Message: message,
		Cause:   cause,
	}
}
