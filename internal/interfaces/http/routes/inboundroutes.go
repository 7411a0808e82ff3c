package routes

import (
	"github.com/gin-gonic/gin"

	inboundhandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/inbound"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
)

type InboundRouteConfig struct {
	InboundHandler *inboundhandlers.InboundHandler
	RateLimiter    *middleware.RateLimiter
}

// SetupInboundRoutes registers the public endpoints used by channel adapters
// and the guest widget. They are rate limited per client IP.
func SetupInboundRoutes(engine *gin.Engine, config *InboundRouteConfig) {
	inbound := engine.Group("/inbound")
	inbound.Use(config.RateLimiter.Limit())
	{
		inbound.POST("/:channel", config.InboundHandler.Ingest)
	}

	guest := engine.Group("/guest")
	guest.Use(config.RateLimiter.Limit())
	{
		guest.POST("/conversations/:id/messages", config.InboundHandler.PostGuestMessage)
	}
}
