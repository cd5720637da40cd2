// Package errors provides the application error taxonomy shared by use cases
// and the HTTP layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation_error"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeConflict      ErrorType = "conflict"
	ErrorTypeUnauthorized  ErrorType = "unauthorized"
	ErrorTypeForbidden     ErrorType = "forbidden"
	ErrorTypeMisconfigured ErrorType = "misconfigured"
	ErrorTypeUpstream      ErrorType = "upstream_failure"
	ErrorTypeRateLimited   ErrorType = "rate_limited"
	ErrorTypeInternal      ErrorType = "internal_error"
)

// AppError represents an application error with additional context.
// Details are meant for logs and admin-facing responses only.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Exposed reports whether the message may be shown to any caller. Server
// side failures are replaced by a generic message.
func (e *AppError) Exposed() bool {
	return e.Code < http.StatusInternalServerError
}

func newError(t ErrorType, code int, message string, details []string) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: strings.Join(details, "; "),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(details ...string) *AppError {
	return newError(ErrorTypeUnauthorized, http.StatusUnauthorized, "Unauthorized", details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewMisconfiguredError reports a required server side setting that is absent.
func NewMisconfiguredError(setting string) *AppError {
	return newError(ErrorTypeMisconfigured, http.StatusInternalServerError,
		"Server misconfigured", []string{setting + " is not configured"})
}

// NewUpstreamError wraps a record store or remote service failure.
func NewUpstreamError(operation string, cause error) *AppError {
	e := newError(ErrorTypeUpstream, http.StatusInternalServerError, "Upstream failure", []string{operation})
	e.cause = cause
	return e
}

// NewRateLimitedError creates a new too-many-requests error
func NewRateLimitedError(details ...string) *AppError {
	return newError(ErrorTypeRateLimited, http.StatusTooManyRequests, "Too many requests", details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func hasType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsNotFoundError(err error) bool      { return hasType(err, ErrorTypeNotFound) }
func IsValidationError(err error) bool    { return hasType(err, ErrorTypeValidation) }
func IsUnauthorizedError(err error) bool  { return hasType(err, ErrorTypeUnauthorized) }
func IsConflictError(err error) bool      { return hasType(err, ErrorTypeConflict) }
func IsMisconfiguredError(err error) bool { return hasType(err, ErrorTypeMisconfigured) }
func IsUpstreamError(err error) bool      { return hasType(err, ErrorTypeUpstream) }

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
