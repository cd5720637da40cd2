package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/infrastructure/metrics"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

// AdminHeader carries the admin shared secret.
const AdminHeader = "X-Admin-Password"

// PrincipalResolver verifies presented credentials.
type PrincipalResolver interface {
	ResolveStore(token string) (access.Principal, error)
	ResolveAdmin(presented string) (access.Principal, error)
}

type AuthMiddleware struct {
	resolver   PrincipalResolver
	cookieName string
	logger     logger.Interface
}

func NewAuthMiddleware(resolver PrincipalResolver, cookieName string, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		resolver:   resolver,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RequireStore admits only a valid store session cookie.
func (m *AuthMiddleware) RequireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := m.resolver.ResolveStore(m.sessionCookie(c))
		if err != nil {
			m.reject(c, "store", err)
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

// RequireAdmin admits only a request carrying the admin secret.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := m.resolver.ResolveAdmin(c.GetHeader(AdminHeader))
		if err != nil {
			m.reject(c, "admin", err)
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

// RequireStoreOrAdmin resolves the admin principal when the admin header is
// present and falls back to the session cookie otherwise. A wrong admin
// secret is rejected even if a valid cookie is also sent.
func (m *AuthMiddleware) RequireStoreOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			p    access.Principal
			err  error
			kind = "store"
		)
		if presented := c.GetHeader(AdminHeader); presented != "" {
			kind = "admin"
			p, err = m.resolver.ResolveAdmin(presented)
		} else {
			p, err = m.resolver.ResolveStore(m.sessionCookie(c))
		}
		if err != nil {
			m.reject(c, kind, err)
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

func (m *AuthMiddleware) sessionCookie(c *gin.Context) string {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return token
}

func (m *AuthMiddleware) reject(c *gin.Context, kind string, err error) {
	if errors.IsSecurityEvent(err) {
		m.logger.Warnw("authentication rejected",
			"kind", kind,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"reason", err.Error(),
		)
	}
	metrics.AuthFailures.WithLabelValues(kind).Inc()

	if errors.IsUnauthorizedError(err) {
		utils.UnauthorizedResponse(c)
	} else {
		utils.ErrorResponseWithError(c, err)
	}
	c.Abort()
}
