package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hys-retail/storedesk/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, err error) (int, ErrorBody) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorResponseWithError(c, err)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
		errType string
	}{
		{"validation", errors.NewValidationError("Missing required fields"), http.StatusBadRequest, "Missing required fields", "validation_error"},
		{"not found", errors.NewNotFoundError("Not found"), http.StatusNotFound, "Not found", "not_found"},
		{"unauthorized", errors.NewUnauthorizedError("expired"), http.StatusUnauthorized, "Unauthorized", "unauthorized"},
		{"misconfigured hides setting", errors.NewMisconfiguredError("auth.session.secret"), http.StatusInternalServerError, "Internal server error", "misconfigured"},
		{"upstream hides cause", errors.NewUpstreamError("insert", stderrors.New("dial tcp")), http.StatusInternalServerError, "Internal server error", "upstream_failure"},
		{"plain error", stderrors.New("sql: no rows"), http.StatusInternalServerError, "Internal server error", "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := respond(t, tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, tt.errType, body.Type)
		})
	}
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, ParseSameSite("Strict"))
	assert.Equal(t, http.SameSiteNoneMode, ParseSameSite("None"))
	assert.Equal(t, http.SameSiteLaxMode, ParseSameSite("Lax"))
	assert.Equal(t, http.SameSiteLaxMode, ParseSameSite(""))
}

func TestSetCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetCookie(c, Cookie{Name: "session_store", Value: "tok", MaxAge: 60, Path: "/", HTTPOnly: true, SameSite: http.SameSiteLaxMode})
	SetCookie(c, Cookie{Name: "theme", Value: "dark", Path: "/", SameSite: http.SameSiteStrictMode})

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, 60, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.False(t, cookies[1].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[1].SameSite)
}
