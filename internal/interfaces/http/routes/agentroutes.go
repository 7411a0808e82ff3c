package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/infrastructure/permission"
	agenthandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/agent"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
)

type AgentRouteConfig struct {
	AgentHandler         *agenthandlers.AgentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAgentRoutes(engine *gin.Engine, config *AgentRouteConfig) {
	perm := config.PermissionMiddleware

	agents := engine.Group("/agents")
	agents.Use(config.AuthMiddleware.RequireAuth())
	{
		agents.GET("",
			perm.RequirePermission(permission.ResourceAgents, permission.ActionRead),
			config.AgentHandler.ListAgents)
		agents.PATCH("/me/presence",
			perm.RequirePermission(permission.ResourceAgents, permission.ActionWrite),
			config.AgentHandler.UpdateMyPresence)
	}
}
