package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/supporthub/supporthub/internal/application/notification"
	"github.com/supporthub/supporthub/internal/application/routing/services"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/infrastructure/auth"
	"github.com/supporthub/supporthub/internal/infrastructure/config"
	"github.com/supporthub/supporthub/internal/infrastructure/permission"
	"github.com/supporthub/supporthub/internal/infrastructure/pubsub"
	"github.com/supporthub/supporthub/internal/interfaces/http/middleware"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// ============================================================
// Section 1: Infrastructure - Redis, repositories, auth, events
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db)
	c.txMgr = db.NewTransactionManager(c.db)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT)

	enforcer, err := permission.NewEnforcer(c.db, logger.WithComponent("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.userRepo, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.rateLimiter = middleware.NewRateLimiter(c.redis, cfg.Server.PublicRateLimit, time.Minute, log)

	if c.redis != nil {
		c.notifier = pubsub.NewRedisNotifier(c.redis, logger.WithComponent("notifier"))
	} else {
		c.notifier = pubsub.NewLogNotifier(logger.WithComponent("notifier"))
	}

	c.eventDispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, logger.WithComponent("events"))
	relay := notification.NewRelay(c.notifier, logger.WithComponent("notification.relay"))
	if err := relay.Register(c.eventDispatcher); err != nil {
		return err
	}
	if err := c.eventDispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}

	return nil
}

// initRedis returns nil when Redis is disabled. An unreachable server is
// logged but kept: the notifier and rate limiter both degrade on errors.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, notifications will only be logged")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, continuing without realtime guarantees",
			"addr", cfg.Redis.GetAddr(),
			"error", err,
		)
		return redisClient
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}

// ============================================================
// Section 2: Routing engine
// ============================================================

func (c *Container) initRouting() {
	routingCfg := c.cfg.Routing
	log := logger.WithComponent("routing")

	selector := services.NewSelector(c.repos.agentRepo, services.SelectorConfig{
		AllowOverflow: routingCfg.AllowOverflow,
		RetryLimit:    routingCfg.AssignRetryLimit,
	}, log)
	executor := services.NewActionExecutor(c.repos.queueRepo, selector, log)
	c.routingEngine = services.NewEngine(c.repos.ruleRepo, executor, log)
}
