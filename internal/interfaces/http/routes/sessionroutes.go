package routes

import (
	"github.com/gin-gonic/gin"

	sessionhandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/session"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
)

type SessionRouteConfig struct {
	SessionHandler *sessionhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	LoginLimiter   *middleware.RateLimiter
}

// SetupSessionRoutes configures store and admin login routes.
func SetupSessionRoutes(engine *gin.Engine, config *SessionRouteConfig) {
	session := engine.Group("/session")
	{
		session.POST("/login", config.LoginLimiter.Limit(), config.SessionHandler.Login)
		session.POST("/logout", config.SessionHandler.Logout)
		session.GET("/whoami", config.AuthMiddleware.RequireStore(), config.SessionHandler.WhoAmI)
	}

	engine.POST("/admin/login", config.LoginLimiter.Limit(), config.SessionHandler.AdminLogin)
}
