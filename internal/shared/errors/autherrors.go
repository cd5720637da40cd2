package errors

import stderrors "errors"

// AuthError marks authentication failures worth recording as security events
// (wrong admin secret, tampered session token). The caller still sees a
// plain 401.
type AuthError struct {
	*AppError
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidSessionError is returned for a session cookie that fails verification.
func NewInvalidSessionError(reason string) *AuthError {
	return &AuthError{AppError: NewUnauthorizedError(reason), SecurityEvent: true}
}

// NewInvalidAdminSecretError is returned when a presented admin secret does not match.
func NewInvalidAdminSecretError() *AuthError {
	return &AuthError{AppError: NewUnauthorizedError("admin secret mismatch"), SecurityEvent: true}
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr.SecurityEvent
	}
	return false
}
