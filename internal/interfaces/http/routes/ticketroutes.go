package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/infrastructure/permission"
	tickethandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/ticket"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	auth := config.AuthMiddleware
	perm := config.PermissionMiddleware

	tickets := engine.Group("/tickets")
	{
		tickets.POST("",
			auth.RequireStore(),
			perm.RequirePermission(permission.ResourceTicket, permission.ActionCreate),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			auth.RequireStoreOrAdmin(),
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.ListTickets)

		tickets.GET("/:id/comments",
			auth.RequireStoreOrAdmin(),
			perm.RequirePermission(permission.ResourceComment, permission.ActionRead),
			config.TicketHandler.ListComments)
		tickets.POST("/:id/comments",
			auth.RequireStoreOrAdmin(),
			perm.RequirePermission(permission.ResourceComment, permission.ActionCreate),
			config.TicketHandler.AddComment)

		tickets.GET("/:id",
			auth.RequireStoreOrAdmin(),
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			auth.RequireAdmin(),
			perm.RequirePermission(permission.ResourceTicket, permission.ActionUpdate),
			config.TicketHandler.PatchTicket)
	}
}
