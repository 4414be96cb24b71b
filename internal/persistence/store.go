package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/org-service/internal/config"
	"github.com/spec-kit/org-service/internal/repository"
	"github.com/spec-kit/org-service/internal/repository/gormstore"
	"github.com/spec-kit/org-service/internal/repository/memory"
)

// Database is the selected storage backend and its repositories.
type Database struct {
	Driver       string
	Repositories *repository.Store

	pinger func(context.Context) error
	closer func()
}

// OpenDatabase connects the backend chosen by cfg.Database.Driver.
func OpenDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Database, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return &Database{
			Driver:       config.DriverPostgres,
			Repositories: repository.NewPostgresStore(pg.PoolHandle()),
			pinger:       pg.Ping,
			closer:       pg.Close,
		}, nil

	case config.DriverMySQL:
		my, err := NewMySQL(ctx, cfg.MySQL, cfg.App.Env, logger)
		if err != nil {
			return nil, err
		}
		return &Database{
			Driver:       config.DriverMySQL,
			Repositories: gormstore.New(my.DB),
			pinger:       my.Ping,
			closer:       my.Close,
		}, nil
	}

	logger.Warn("no database configured; using in-memory store")
	return NewMemoryDatabase(), nil
}

// NewMemoryDatabase returns a process-local backend.
func NewMemoryDatabase() *Database {
	store := memory.NewStore()
	return &Database{
		Driver:       config.DriverMemory,
		Repositories: store.Repositories(),
		pinger:       store.Ping,
		closer:       func() {},
	}
}

// Ping checks the backend is reachable.
func (d *Database) Ping(ctx context.Context) error {
	return d.pinger(ctx)
}

// Close releases backend resources.
func (d *Database) Close() {
	if d != nil && d.closer != nil {
		d.closer()
	}
}
