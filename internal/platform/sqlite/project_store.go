package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/platform/logger"
	"github.com/ehatamm/project/internal/store"
)

const projectColumns = `id, name, description, start_date, end_date, created_at, updated_at`

// SQLite has no native date or timestamp type. Dates are stored as
// YYYY-MM-DD text and timestamps in this layout.
const timestampLayout = time.RFC3339Nano

// SQLiteProjectStore implements store.ProjectStore on a SQLite database.
type SQLiteProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a SQLiteProjectStore.
type Option func(*SQLiteProjectStore)

// WithClock replaces the clock used to stamp created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteProjectStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSQLiteProjectStore creates a SQLite-backed ProjectStore.
// If logger is nil, a default logger will be used.
func NewSQLiteProjectStore(db store.DBTX, logger *slog.Logger, opts ...Option) *SQLiteProjectStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &SQLiteProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store"), slog.String("backend", "sqlite")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ store.ProjectStore = (*SQLiteProjectStore)(nil)

// FindAll returns every project ordered by id.
func (s *SQLiteProjectStore) FindAll(ctx context.Context) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		log.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	// Collect first: with a single connection, nested queries during
	// iteration would deadlock.
	projects := make([]*domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			log.Error("failed to scan project row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("project", "find_all", "failed to scan row", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("projects listed", slog.Int("count", len(projects)))
	return projects, nil
}

// FindByID returns store.ErrProjectNotFound when no row has the given id.
func (s *SQLiteProjectStore) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	p, err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project not found", slog.Int64("project_id", id))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project by ID",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return nil, MapError(err)
	}
	return p, nil
}

// Save inserts p when its ID is zero and updates the existing row otherwise.
func (s *SQLiteProjectStore) Save(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: project cannot be nil", store.ErrInvalidEntity)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	saved := p.Clone()
	now := s.now().UTC()

	if saved.ID == 0 {
		saved.CreatedAt = now
		saved.UpdatedAt = now

		result, err := s.db.ExecContext(ctx, `
			INSERT INTO projects (name, description, start_date, end_date, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			saved.Name,
			nullString(saved.Description),
			saved.StartDate.String(),
			saved.EndDate.String(),
			saved.CreatedAt.Format(timestampLayout),
			saved.UpdatedAt.Format(timestampLayout),
		)
		if err != nil {
			log.Error("failed to insert project", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read inserted project id: %w", err)
		}
		saved.ID = id

		log.Info("project created", slog.Int64("project_id", saved.ID))
		return saved, nil
	}

	saved.UpdatedAt = now

	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		UPDATE projects
		SET name = ?, description = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?
		RETURNING created_at`,
		saved.Name,
		nullString(saved.Description),
		saved.StartDate.String(),
		saved.EndDate.String(),
		saved.UpdatedAt.Format(timestampLayout),
		saved.ID,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project to update not found", slog.Int64("project_id", saved.ID))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to update project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", saved.ID))
		return nil, MapError(err)
	}

	if saved.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}

	log.Info("project updated", slog.Int64("project_id", saved.ID))
	return saved, nil
}

// DeleteByID is a no-op for a missing id.
func (s *SQLiteProjectStore) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return MapError(err)
	}
	return nil
}

// ExistsByID reports whether a row with the given id exists.
func (s *SQLiteProjectStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Ping checks the connection.
func (s *SQLiteProjectStore) Ping(ctx context.Context) error {
	if p, ok := s.db.(store.Pinger); ok {
		return MapError(p.PingContext(ctx))
	}
	var one int
	return MapError(s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p                    domain.Project
		description          sql.NullString
		startDate, endDate   string
		createdAt, updatedAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &description, &startDate, &endDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		d := description.String
		p.Description = &d
	}

	var err error
	if p.StartDate, err = civil.ParseDate(startDate); err != nil {
		return nil, fmt.Errorf("invalid start_date %q for project %d: %w", startDate, p.ID, err)
	}
	if p.EndDate, err = civil.ParseDate(endDate); err != nil {
		return nil, fmt.Errorf("invalid end_date %q for project %d: %w", endDate, p.ID, err)
	}
	if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return ts.UTC(), nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
