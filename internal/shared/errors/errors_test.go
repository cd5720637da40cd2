package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapToStatusCodes(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		code    int
		exposed bool
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, true},
		{"not found", NewNotFoundError("Not found"), http.StatusNotFound, true},
		{"unauthorized", NewUnauthorizedError(), http.StatusUnauthorized, true},
		{"misconfigured", NewMisconfiguredError("auth.admin.secret"), http.StatusInternalServerError, false},
		{"upstream", NewUpstreamError("insert ticket", fmt.Errorf("boom")), http.StatusInternalServerError, false},
		{"rate limited", NewRateLimitedError(), http.StatusTooManyRequests, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.exposed, tt.err.Exposed())
		})
	}
}

func TestUnauthorizedMessageIsFixed(t *testing.T) {
	err := NewUnauthorizedError("token expired")
	assert.Equal(t, "Unauthorized", err.Message)
	assert.Equal(t, "token expired", err.Details)
}

func TestUpstreamErrorUnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("create: %w", NewUpstreamError("insert ticket", cause))

	assert.True(t, IsUpstreamError(err))
	assert.ErrorIs(t, err, cause)
}

func TestAuthErrorIsUnauthorized(t *testing.T) {
	err := fmt.Errorf("resolve: %w", NewInvalidAdminSecretError())

	assert.True(t, IsUnauthorizedError(err))
	assert.True(t, IsSecurityEvent(err))
	assert.False(t, IsSecurityEvent(NewUnauthorizedError()))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry '02' for key 'PRIMARY'")))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: stores.id")))
	assert.False(t, IsDuplicateError(stderrors.New("syntax error")))
	assert.False(t, IsDuplicateError(nil))
}
