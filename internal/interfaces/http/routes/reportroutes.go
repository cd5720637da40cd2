package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/infrastructure/permission"
	reporthandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/report"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
)

type ReportRouteConfig struct {
	ReportHandler        *reporthandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/admin/reports")
	reports.Use(
		config.AuthMiddleware.RequireAdmin(),
		config.PermissionMiddleware.RequirePermission(permission.ResourceReport, permission.ActionRead),
	)
	{
		reports.GET("/overview", config.ReportHandler.Overview)
		reports.GET("/store-category", config.ReportHandler.StoreCategory)
		reports.GET("/timeline", config.ReportHandler.Timeline)
	}
}
