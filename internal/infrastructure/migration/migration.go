package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/shared/config"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks versioned goose scripts for MySQL and GORM AutoMigrate
// for SQLite, whose dialect the scripts are not written for. forceAuto
// selects AutoMigrate regardless of driver.
func NewManager(cfg *config.DatabaseConfig, forceAuto bool) *Manager {
	var strategy Strategy
	if forceAuto || cfg.IsSQLite() {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		strategy = NewGooseStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate brings the schema up to date.
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// Down rolls back steps versioned migrations.
func (m *Manager) Down(db *gorm.DB, steps int) error {
	versioned, ok := m.strategy.(VersionedStrategy)
	if !ok {
		return fmt.Errorf("strategy %s does not support rollback", m.strategy.GetName())
	}
	return versioned.MigrateDown(db, steps)
}

// Status prints the migration state of a versioned strategy.
func (m *Manager) Status(db *gorm.DB) error {
	versioned, ok := m.strategy.(VersionedStrategy)
	if !ok {
		m.logger.Infow("schema is managed by struct definitions; no versions to report",
			"strategy", m.strategy.GetName())
		return nil
	}
	return versioned.Status(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
