package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable identifier for a category of failure
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Rendering errors
	ErrWriteFailure ErrorCode = "WRITE_FAILURE"
	ErrStyleLoad    ErrorCode = "STYLE_LOAD"

	// Input errors
	ErrDecode            ErrorCode = "DECODE"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrPayloadTooLarge   ErrorCode = "PAYLOAD_TOO_LARGE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// DocprintError is a structured error with a code and optional details
type DocprintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DocprintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocprintError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DocprintError carrying the same code
func (e *DocprintError) Is(target error) bool {
	var targetErr *DocprintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocprintError with the given code and message
func New(code ErrorCode, message string) *DocprintError {
	return &DocprintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocprintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DocprintError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *DocprintError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocprintError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DocprintError) WithDetail(key string, value interface{}) *DocprintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DocprintError) WithDetails(details map[string]interface{}) *DocprintError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var docErr *DocprintError
	if errors.As(err, &docErr) {
		return docErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var docErr *DocprintError
	if errors.As(err, &docErr) {
		return docErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var docErr *DocprintError
	if errors.As(err, &docErr) {
		return docErr.Details
	}
	return nil
}
