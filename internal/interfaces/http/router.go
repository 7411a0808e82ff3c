package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/supporthub/supporthub/docs"
	"github.com/supporthub/supporthub/internal/infrastructure/config"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
	"github.com/supporthub/supporthub/internal/interfaces/http/routes"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// Router owns the HTTP server built on top of a Container.
type Router struct {
	*Container
	server *http.Server
}

// NewRouter wires a Container for db and cfg.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	routes.SetupInboundRoutes(r.engine, &routes.InboundRouteConfig{
		InboundHandler: r.hdlrs.inboundHandler,
		RateLimiter:    r.rateLimiter,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		ConversationHandler:  r.hdlrs.conversationHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupConversationRoutes(r.engine, &routes.ConversationRouteConfig{
		ConversationHandler:  r.hdlrs.conversationHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupQueueRoutes(r.engine, &routes.QueueRouteConfig{
		QueueHandler:         r.hdlrs.queueHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupAgentRoutes(r.engine, &routes.AgentRouteConfig{
		AgentHandler:         r.hdlrs.agentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupRoutingRuleRoutes(r.engine, &routes.RoutingRuleRouteConfig{
		RoutingRuleHandler:   r.hdlrs.routingRuleHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// Run serves HTTP on addr until Shutdown is called.
func (r *Router) Run(addr string) error {
	serverCfg := r.cfg.Server
	r.server = &http.Server{
		Addr:         addr,
		Handler:      r.engine,
		ReadTimeout:  secondsOr(serverCfg.ReadTimeout, 15),
		WriteTimeout: secondsOr(serverCfg.WriteTimeout, 15),
		IdleTimeout:  60 * time.Second,
	}

	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then stops background components.
func (r *Router) Shutdown(ctx context.Context) error {
	var err error
	if r.server != nil {
		err = r.server.Shutdown(ctx)
	}
	r.Container.Shutdown()
	return err
}

func secondsOr(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
