package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/supporthub/supporthub/internal/infrastructure/database"
	"github.com/supporthub/supporthub/internal/infrastructure/migration"
	"github.com/supporthub/supporthub/internal/interfaces/cli/bootstrap"
	"github.com/supporthub/supporthub/internal/interfaces/cli/seed"
	httpRouter "github.com/supporthub/supporthub/internal/interfaces/http"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/version"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the SupportHub HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Build the schema from model definitions instead of versioned scripts")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = bootstrap.ResolveEnv(env)

	cfg, log, err := bootstrap.ConfigAndDatabase(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"auto-migrate", autoMigrate,
	)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if autoMigrate && env == "production" {
		log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
	}
	if err := migration.NewManager(&cfg.Database, autoMigrate).Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	if cfg.Seed.Enabled {
		applied, err := seed.Apply(cmd.Context(), database.Get(), cfg.Seed.File, log)
		if err != nil {
			return err
		}
		log.Infow("seed check completed", "applied", applied)
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()

	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode,
		)
		if err := router.Run(cfg.Server.GetAddr()); err != nil {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := router.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
