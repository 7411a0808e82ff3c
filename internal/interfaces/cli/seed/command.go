package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/infrastructure/database"
	"github.com/supporthub/supporthub/internal/infrastructure/migration"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/seeds"
	"github.com/supporthub/supporthub/internal/infrastructure/repository"
	"github.com/supporthub/supporthub/internal/interfaces/cli/bootstrap"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo queues, users, agents and routing rules",
		Long:  `Load the seed document into an empty database. A database that already has queues is left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed YAML file (defaults to the built-in demo data)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.ConfigAndDatabase(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migration.NewManager(&cfg.Database, false).Migrate(database.Get()); err != nil {
		return err
	}

	path := file
	if path == "" {
		path = cfg.Seed.File
	}
	applied, err := Apply(cmd.Context(), database.Get(), path, log)
	if err != nil {
		return err
	}
	if applied {
		fmt.Println("Seed data loaded")
	} else {
		fmt.Println("Database already seeded, nothing to do")
	}
	return nil
}

// Apply loads the seed document at path, or the built-in one when path is
// empty, and writes it unless the database already holds queues.
func Apply(ctx context.Context, gdb *gorm.DB, path string, log logger.Interface) (bool, error) {
	doc, err := seeds.Load(path)
	if err != nil {
		return false, fmt.Errorf("failed to load seed file: %w", err)
	}

	seeder := seeds.NewSeeder(
		repository.NewQueueRepository(gdb),
		repository.NewUserRepository(gdb),
		repository.NewAgentRepository(gdb),
		repository.NewRoutingRuleRepository(gdb),
		db.NewTransactionManager(gdb),
		log,
	)
	applied, err := seeder.Run(ctx, doc)
	if err != nil {
		return false, fmt.Errorf("failed to seed database: %w", err)
	}
	return applied, nil
}
