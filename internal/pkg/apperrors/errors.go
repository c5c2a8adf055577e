package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Code is a stable, machine-readable error classification
type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeNotFound    Code = "NOT_FOUND"
	CodeForbidden   Code = "FORBIDDEN"
	CodeConflict    Code = "CONFLICT"
	CodeInternal    Code = "INTERNAL_ERROR"
	CodeRateLimited Code = "RATE_LIMITED"
)

// AppError is a caller-facing error with a stable code and message.
// Field is set for validation errors; RetryAfter for rate limiting.
type AppError struct {
	Code       Code
	Message    string
	Field      string
	RetryAfter time.Duration
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the error code to an HTTP status code
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Validation returns a field-scoped validation error
func Validation(field, message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Field: field}
}

// NotFound returns an unknown-subject error
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// Forbidden returns a role or actor-guard error
func Forbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// Conflict returns a status-guard error
func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// Internal wraps an unexpected failure
func Internal(message string, cause error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, cause: cause}
}

// RateLimited returns a too-many-requests error with a retry-after hint
func RateLimited(retryAfter time.Duration) *AppError {
	return &AppError{Code: CodeRateLimited, Message: "Too many requests", RetryAfter: retryAfter}
}

// As extracts an *AppError from an error chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
