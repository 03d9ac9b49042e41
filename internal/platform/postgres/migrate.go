package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/ehatamm/project/internal/platform/migrations"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrations describes the embedded schema migrations for PostgreSQL.
var Migrations = migrations.Source{
	FS:      migrationFS,
	Dir:     "migrations",
	Dialect: "postgres",
}

// Migrate runs a goose command (up, down, reset, status, version) against db.
func Migrate(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	return migrations.Run(ctx, db, Migrations, command, logger)
}
