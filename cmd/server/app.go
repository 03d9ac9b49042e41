package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ehatamm/project/internal/config"
	"github.com/ehatamm/project/internal/platform/migrations"
	"github.com/ehatamm/project/internal/service"
	"github.com/ehatamm/project/internal/store"
	"github.com/ehatamm/project/internal/validation"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is configured.
	db *sql.DB

	projectStore   store.ProjectStore
	validator      *validation.Validator
	projectService service.ProjectService
}

// newApplication creates a new application instance with all dependencies initialized.
// It opens the configured database, applies pending migrations when
// auto_migrate is set, and builds the project store and service on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Database.Driver != driverMemory {
		db, migrate, err := setupAppDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		app.db = db

		if cfg.Database.AutoMigrate {
			if err := migrate(ctx, db, migrations.CommandUp, logger); err != nil {
				app.cleanup()
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}
	}

	app.projectStore = newProjectStore(cfg, app.db, logger)
	app.validator = validation.New()

	projectService, err := service.NewProjectService(app.projectStore, app.validator, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}
	app.projectService = projectService

	logger.Info("Application initialized successfully",
		"driver", cfg.Database.Driver,
		"breaker_enabled", cfg.Breaker.Enabled)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It blocks until ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}
