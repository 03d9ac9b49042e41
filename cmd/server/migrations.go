package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ehatamm/project/internal/config"
)

// handleMigrations executes a single migration command against the configured
// database and closes the connection afterwards.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver == driverMemory {
		return fmt.Errorf("migrations require a SQL database, driver is %q", cfg.Database.Driver)
	}

	db, migrate, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	logger.Info("Executing migrations", "command", command, "driver", cfg.Database.Driver)
	return migrate(ctx, db, command, logger)
}
