package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/application/notification"
	"github.com/supporthub/supporthub/internal/application/routing/services"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/infrastructure/auth"
	"github.com/supporthub/supporthub/internal/infrastructure/config"
	"github.com/supporthub/supporthub/internal/infrastructure/permission"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

const eventBufferSize = 256

// Container holds the infrastructure components, repositories, use cases and
// handlers, and wires them together. Shutdown releases what it started.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	txMgr  *db.TransactionManager

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Auth
	jwtSvc   *auth.JWTService
	enforcer *permission.Enforcer

	// Routing
	routingEngine *services.Engine

	// Events and realtime notifications
	eventDispatcher *events.InMemoryEventDispatcher
	notifier        notification.Notifier
}

// NewContainer creates a Container with every dependency wired. The event
// dispatcher is started; call Shutdown to stop it.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, auth, events
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Routing engine
	c.initRouting()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine the routes are registered on.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background components. It is safe to call once.
func (c *Container) Shutdown() {
	if c.eventDispatcher != nil {
		if err := c.eventDispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
