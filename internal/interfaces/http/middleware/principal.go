package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/domain/access"
)

const principalKey = "principal"

// SetPrincipal stores the authenticated principal on the request context.
func SetPrincipal(c *gin.Context, p access.Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the principal set by the auth middleware.
func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}
