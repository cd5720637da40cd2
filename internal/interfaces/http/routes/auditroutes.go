package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/infrastructure/permission"
	audithandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/audit"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
)

type AuditRouteConfig struct {
	AuditHandler         *audithandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAuditRoutes(engine *gin.Engine, config *AuditRouteConfig) {
	perm := config.PermissionMiddleware

	engine.POST("/audit-log",
		config.AuthMiddleware.RequireStore(),
		perm.RequirePermission(permission.ResourceAudit, permission.ActionCreate),
		config.AuditHandler.Record)

	engine.GET("/admin/audit-logs",
		config.AuthMiddleware.RequireAdmin(),
		perm.RequirePermission(permission.ResourceAudit, permission.ActionRead),
		config.AuditHandler.List)
}
