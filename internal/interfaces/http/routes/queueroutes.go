package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/infrastructure/permission"
	queuehandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/queue"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
)

type QueueRouteConfig struct {
	QueueHandler         *queuehandlers.QueueHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupQueueRoutes(engine *gin.Engine, config *QueueRouteConfig) {
	perm := config.PermissionMiddleware

	queues := engine.Group("/queues")
	queues.Use(config.AuthMiddleware.RequireAuth())
	{
		queues.GET("",
			perm.RequirePermission(permission.ResourceQueues, permission.ActionRead),
			config.QueueHandler.ListQueues)
		queues.GET("/:id/stats",
			perm.RequirePermission(permission.ResourceQueueStats, permission.ActionRead),
			config.QueueHandler.GetQueueStats)
	}
}
