package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hys-retail/storedesk/internal/shared/errors"
)

// ParseUUIDParam reads a UUID path parameter. A malformed id cannot match any
// row, so it is reported as not found.
func ParseUUIDParam(c *gin.Context, paramName string) (string, error) {
	raw := c.Param(paramName)
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", errors.NewNotFoundError("Not found")
	}
	return parsed.String(), nil
}
