// internal/engine/errors.go
package engine

import (
	"errors"
	"fmt"
)

// Common engine errors
var (
	ErrInvalidPage  = errors.New("page index must be positive")
	ErrNetworkError = errors.New("network error")
	ErrParseError   = errors.New("failed to parse response")
	ErrMalformedRow = errors.New("malformed innings row")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeNetworkError ErrorCode = "NETWORK_ERROR"
	ErrCodeHTTPStatus   ErrorCode = "HTTP_STATUS"
	ErrCodeParseError   ErrorCode = "PARSE_ERROR"
	ErrCodeMalformedRow ErrorCode = "MALFORMED_ROW"
	ErrCodeOutput       ErrorCode = "OUTPUT_ERROR"
)

// Error wraps errors with additional context. Every Error is fatal to a run.
type Error struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewError creates a new Error
func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.Details[key] = value
	return e
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
