package postgres

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

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a PostgresProjectStore.
type Option func(*PostgresProjectStore)

// WithClock replaces the clock used to stamp created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *PostgresProjectStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the ProjectStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger, opts ...Option) *PostgresProjectStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store"), slog.String("backend", "postgres")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure PostgresProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// FindAll implements store.ProjectStore.FindAll.
// Projects are returned in ascending id order.
func (s *PostgresProjectStore) FindAll(ctx context.Context) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

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
		log.Error("error iterating project rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("projects listed", slog.Int("count", len(projects)))
	return projects, nil
}

// FindByID implements store.ProjectStore.FindByID.
// Returns store.ErrProjectNotFound if the project does not exist.
func (s *PostgresProjectStore) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
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

// Save implements store.ProjectStore.Save.
// A zero ID inserts a new row; any other ID updates the existing row in place.
func (s *PostgresProjectStore) Save(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: project cannot be nil", store.ErrInvalidEntity)
	}
	if p.ID == 0 {
		return s.insert(ctx, p)
	}
	return s.update(ctx, p)
}

func (s *PostgresProjectStore) insert(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	saved := p.Clone()
	now := s.now().UTC()
	saved.CreatedAt = now
	saved.UpdatedAt = now

	query := `
		INSERT INTO projects (name, description, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		saved.Name,
		nullString(saved.Description),
		dateValue(saved.StartDate),
		dateValue(saved.EndDate),
		saved.CreatedAt,
		saved.UpdatedAt,
	).Scan(&saved.ID)
	if err != nil {
		log.Error("failed to insert project",
			slog.String("error", err.Error()),
			slog.String("name", saved.Name))
		return nil, MapError(err)
	}

	log.Info("project created", slog.Int64("project_id", saved.ID))
	return saved, nil
}

func (s *PostgresProjectStore) update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	saved := p.Clone()
	saved.UpdatedAt = s.now().UTC()

	query := `
		UPDATE projects
		SET name = $1, description = $2, start_date = $3, end_date = $4, updated_at = $5
		WHERE id = $6
		RETURNING created_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		saved.Name,
		nullString(saved.Description),
		dateValue(saved.StartDate),
		dateValue(saved.EndDate),
		saved.UpdatedAt,
		saved.ID,
	).Scan(&saved.CreatedAt)
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
	saved.CreatedAt = saved.CreatedAt.UTC()

	log.Info("project updated", slog.Int64("project_id", saved.ID))
	return saved, nil
}

// DeleteByID implements store.ProjectStore.DeleteByID.
// Deleting a project that does not exist is a no-op.
func (s *PostgresProjectStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return MapError(err)
	}

	if n, err := result.RowsAffected(); err == nil {
		log.Debug("project delete executed",
			slog.Int64("project_id", id),
			slog.Int64("rows_affected", n))
	}
	return nil
}

// ExistsByID implements store.ProjectStore.ExistsByID.
func (s *PostgresProjectStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check project existence",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return false, MapError(err)
	}
	return exists, nil
}

// Ping implements store.ProjectStore.Ping.
// A pool is pinged directly; a transaction runs a trivial query instead.
func (s *PostgresProjectStore) Ping(ctx context.Context) error {
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
		p           domain.Project
		description sql.NullString
		startDate   time.Time
		endDate     time.Time
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&description,
		&startDate,
		&endDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		d := description.String
		p.Description = &d
	}
	p.StartDate = civil.DateOf(startDate)
	p.EndDate = civil.DateOf(endDate)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func dateValue(d civil.Date) time.Time {
	return d.In(time.UTC)
}
