package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/infrastructure/permission"
	conversationhandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/conversation"
	tickethandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/ticket"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	ConversationHandler  *conversationhandlers.ConversationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.GET("",
			perm.RequirePermission(permission.ResourceTickets, permission.ActionRead),
			config.TicketHandler.ListTickets)

		// Specific action endpoints before the bare /:id routes
		tickets.POST("/:id/assign",
			perm.RequirePermission(permission.ResourceTickets, permission.ActionAssign),
			config.TicketHandler.AssignTicket)
		tickets.GET("/:id/conversation",
			perm.RequirePermission(permission.ResourceConversation, permission.ActionRead),
			config.ConversationHandler.GetTicketConversation)

		tickets.PATCH("/:id",
			perm.RequirePermission(permission.ResourceTickets, permission.ActionWrite),
			config.TicketHandler.UpdateTicket)
	}
}
