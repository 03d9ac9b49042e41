package store

import (
	"context"

	"github.com/ehatamm/project/internal/domain"
)

// ProjectStore is the storage gateway for projects.
// Implementations own identity generation and timestamp stamping.
type ProjectStore interface {
	// FindAll returns every stored project in the backend's natural order.
	// Returns an empty, non-nil slice when nothing is stored.
	FindAll(ctx context.Context) ([]*domain.Project, error)

	// FindByID retrieves a project by its identifier.
	// Returns ErrProjectNotFound if the project does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Project, error)

	// Save persists p and returns the stored record.
	// A project with a zero ID is inserted: the store assigns ID, CreatedAt
	// and UpdatedAt. Otherwise the existing row is replaced; CreatedAt is kept
	// and UpdatedAt refreshed. Returns ErrProjectNotFound when updating a row
	// that no longer exists. p itself is not modified.
	Save(ctx context.Context, p *domain.Project) (*domain.Project, error)

	// DeleteByID removes the project with the given ID.
	// Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether a project with the given ID is stored.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}
