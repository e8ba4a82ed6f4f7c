// Package migrate provides database migration functionality using Goose.
package migrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/uptrace/bun"
	"go.uber.org/fx"

	"github.com/lexigraph/lexigraph/internal/config"
	"github.com/lexigraph/lexigraph/migrations"
	"github.com/lexigraph/lexigraph/pkg/logger"
)

// Module provides migration dependencies and runs pending migrations on
// startup when AUTO_MIGRATE is set.
var Module = fx.Options(
	fx.Provide(NewMigrator),
	fx.Invoke(autoMigrate),
)

// Migrator handles database migrations.
type Migrator struct {
	db  *bun.DB
	log *slog.Logger
}

// NewMigrator creates a new Migrator instance.
func NewMigrator(db *bun.DB, log *slog.Logger) *Migrator {
	return &Migrator{
		db:  db,
		log: log.With(logger.Scope("migrator")),
	}
}

func (m *Migrator) setup() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Up runs all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	m.log.Info("running database migrations")

	if err := m.setup(); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db.DB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.log.Info("migrations completed successfully")
	return nil
}

// Down rolls back the last migration.
func (m *Migrator) Down(ctx context.Context) error {
	m.log.Info("rolling back last migration")

	if err := m.setup(); err != nil {
		return err
	}

	if err := goose.DownContext(ctx, m.db.DB, "."); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	m.log.Info("rollback completed successfully")
	return nil
}

// Version returns the current database version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	if err := m.setup(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, m.db.DB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

func autoMigrate(lc fx.Lifecycle, m *Migrator, cfg *config.Config) {
	if !cfg.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return m.Up(ctx)
		},
	})
}
