package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/infrastructure/permission"
	conversationhandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/conversation"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
)

type ConversationRouteConfig struct {
	ConversationHandler  *conversationhandlers.ConversationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupConversationRoutes(engine *gin.Engine, config *ConversationRouteConfig) {
	conversations := engine.Group("/conversations")
	conversations.Use(config.AuthMiddleware.RequireAuth())
	{
		conversations.POST("/:id/messages",
			config.PermissionMiddleware.RequirePermission(permission.ResourceConversation, permission.ActionReply),
			config.ConversationHandler.SendReply)
	}
}
