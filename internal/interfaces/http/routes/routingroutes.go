package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/infrastructure/permission"
	routinghandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/routing"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
)

type RoutingRuleRouteConfig struct {
	RoutingRuleHandler   *routinghandlers.RoutingRuleHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupRoutingRuleRoutes(engine *gin.Engine, config *RoutingRuleRouteConfig) {
	perm := config.PermissionMiddleware

	rules := engine.Group("/routing-rules")
	rules.Use(config.AuthMiddleware.RequireAuth())
	{
		rules.GET("",
			perm.RequirePermission(permission.ResourceRoutingRules, permission.ActionRead),
			config.RoutingRuleHandler.ListRules)
		rules.POST("",
			perm.RequirePermission(permission.ResourceRoutingRules, permission.ActionWrite),
			config.RoutingRuleHandler.CreateRule)
		rules.PATCH("/:id",
			perm.RequirePermission(permission.ResourceRoutingRules, permission.ActionWrite),
			config.RoutingRuleHandler.UpdateRule)
	}
}
