// Package errors defines the error kinds reported by the jcomb command.
package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput   = errors.New("input is empty or contains only whitespace")
	ErrFileNotFound = errors.New("file not found")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeQuery   ErrorType = "query"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeOutput  ErrorType = "output"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error { return e.Err }

// Is reports whether target is an *AppError of the same type.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newError(typ ErrorType) func(string, error) *AppError {
	return func(message string, err error) *AppError {
		return &AppError{Type: typ, Message: message, Err: err}
	}
}

// Constructors for each kind of error.
var (
	NewInputError   = newError(ErrorTypeInput)
	NewParsingError = newError(ErrorTypeParsing)
	NewQueryError   = newError(ErrorTypeQuery)
	NewConfigError  = newError(ErrorTypeConfig)
	NewOutputError  = newError(ErrorTypeOutput)
)

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if appErr.Err != nil {
			msg += ": " + appErr.Err.Error()
		}
		switch appErr.Type {
		case ErrorTypeInput:
			return "Input error: " + msg
		case ErrorTypeParsing:
			return "JSON parsing error: " + msg
		case ErrorTypeQuery:
			return "Query error: " + msg
		case ErrorTypeConfig:
			return "Configuration error: " + msg
		case ErrorTypeOutput:
			return "Output error: " + msg
		default:
			return "Error: " + msg
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
