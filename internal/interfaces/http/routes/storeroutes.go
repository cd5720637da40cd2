package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/infrastructure/permission"
	storehandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/store"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
)

type StoreRouteConfig struct {
	StoreHandler         *storehandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupStoreRoutes configures the device list of a store session and the
// admin store and device management routes.
func SetupStoreRoutes(engine *gin.Engine, config *StoreRouteConfig) {
	perm := config.PermissionMiddleware
	h := config.StoreHandler

	engine.GET("/devices",
		config.AuthMiddleware.RequireStore(),
		perm.RequirePermission(permission.ResourceDevice, permission.ActionRead),
		h.ListMyDevices)

	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/stores", perm.RequirePermission(permission.ResourceStore, permission.ActionRead), h.ListStores)
		admin.POST("/stores", perm.RequirePermission(permission.ResourceStore, permission.ActionCreate), h.CreateStore)
		admin.PATCH("/stores/:id", perm.RequirePermission(permission.ResourceStore, permission.ActionUpdate), h.UpdateStore)

		admin.GET("/stores/:id/devices", perm.RequirePermission(permission.ResourceDevice, permission.ActionRead), h.ListStoreDevices)
		admin.POST("/stores/:id/devices", perm.RequirePermission(permission.ResourceDevice, permission.ActionCreate), h.CreateDevice)
		admin.PATCH("/devices/:id", perm.RequirePermission(permission.ResourceDevice, permission.ActionUpdate), h.UpdateDevice)
		admin.DELETE("/devices/:id", perm.RequirePermission(permission.ResourceDevice, permission.ActionDelete), h.DeleteDevice)
	}
}
