package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/infrastructure/config"
	"github.com/hys-retail/storedesk/internal/infrastructure/metrics"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
	"github.com/hys-retail/storedesk/internal/interfaces/http/routes"
	"github.com/hys-retail/storedesk/internal/interfaces/http/validation"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	if err := validation.Register(); err != nil {
		return nil, err
	}

	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics())

	r.engine.GET("/health", r.hdlrs.healthHandler.Check)
	r.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.SetupSessionRoutes(r.engine, &routes.SessionRouteConfig{
		SessionHandler: r.hdlrs.sessionHandler,
		AuthMiddleware: r.authMiddleware,
		LoginLimiter:   r.loginLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupStoreRoutes(r.engine, &routes.StoreRouteConfig{
		StoreHandler:         r.hdlrs.storeHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupReportRoutes(r.engine, &routes.ReportRouteConfig{
		ReportHandler:        r.hdlrs.reportHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupAuditRoutes(r.engine, &routes.AuditRouteConfig{
		AuditHandler:         r.hdlrs.auditHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
