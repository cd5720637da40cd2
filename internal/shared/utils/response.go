package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/shared/errors"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// OKBody is returned by commands that have nothing else to report.
type OKBody struct {
	OK bool `json:"ok"`
}

// JSON sends data as is with the given status code.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// OK sends {"ok": true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, OKBody{OK: true})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// UnauthorizedResponse sends the fixed 401 body.
func UnauthorizedResponse(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorBody{
		Error: "Unauthorized",
		Type:  string(errors.ErrorTypeUnauthorized),
	})
}

// ErrorResponseWithError maps err to a status code and body. Server side
// failures never leak their message or details.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, ErrorBody{
			Error: "Internal server error",
			Type:  string(errors.ErrorTypeInternal),
		})
		return
	}

	body := ErrorBody{Error: appErr.Message, Type: string(appErr.Type)}
	if !appErr.Exposed() {
		body.Error = "Internal server error"
	}
	c.JSON(appErr.Code, body)
}
