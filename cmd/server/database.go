package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/ehatamm/project/internal/config"
	"github.com/ehatamm/project/internal/platform/breaker"
	"github.com/ehatamm/project/internal/platform/memory"
	"github.com/ehatamm/project/internal/platform/postgres"
	"github.com/ehatamm/project/internal/platform/sqlite"
	"github.com/ehatamm/project/internal/store"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// Supported values of database.driver.
const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
	driverMemory   = "memory"
)

// connectTimeout bounds the initial ping of a freshly opened database.
const connectTimeout = 5 * time.Second

// migrateFunc runs a goose command against a store's embedded migrations.
type migrateFunc func(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error

// setupAppDatabase opens the configured SQL database and returns it together
// with the migration runner for its dialect. It fails for the memory driver.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, migrateFunc, error) {
	switch cfg.Driver {
	case driverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection established", "driver", cfg.Driver)
		return db, postgres.Migrate, nil
	case driverSQLite:
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		logger.Info("Database connection established", "driver", cfg.Driver)
		return db, sqlite.Migrate, nil
	default:
		return nil, nil, fmt.Errorf("driver %q does not use a SQL database", cfg.Driver)
	}
}

// openPostgres opens a pgx-backed pool and verifies it with a ping.
func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// newProjectStore builds the store for the configured driver, wrapped in a
// circuit breaker when enabled. db is ignored for the memory driver.
func newProjectStore(cfg *config.Config, db *sql.DB, logger *slog.Logger) store.ProjectStore {
	var projectStore store.ProjectStore
	switch cfg.Database.Driver {
	case driverPostgres:
		projectStore = postgres.NewPostgresProjectStore(db, logger)
	case driverSQLite:
		projectStore = sqlite.NewSQLiteProjectStore(db, logger)
	default:
		projectStore = memory.NewProjectStore()
	}

	if !cfg.Breaker.Enabled {
		return projectStore
	}

	return breaker.NewProjectStore(projectStore, breaker.Settings{
		Name:        cfg.Database.Driver + "_project_store",
		MaxFailures: cfg.Breaker.MaxFailures,
		OpenTimeout: cfg.Breaker.OpenTimeout,
	}, logger)
}
