// Package breaker wraps a store.ProjectStore with a circuit breaker so a
// failing database is given time to recover instead of being hit by every
// request. While the breaker is open, calls fail fast with store.ErrUnavailable.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/store"
	"github.com/sony/gobreaker"
)

// Settings configures the breaker.
type Settings struct {
	// Name identifies the breaker in logs.
	Name string
	// MaxFailures is the number of consecutive failures that opens the breaker.
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before a probe call is let through.
	OpenTimeout time.Duration
}

// ProjectStore decorates another store.ProjectStore with a circuit breaker.
type ProjectStore struct {
	next store.ProjectStore
	cb   *gobreaker.CircuitBreaker
}

var _ store.ProjectStore = (*ProjectStore)(nil)

// NewProjectStore wraps next. State changes are logged at warn level.
func NewProjectStore(next store.ProjectStore, settings Settings, logger *slog.Logger) *ProjectStore {
	if next == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("next store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if settings.Name == "" {
		settings.Name = "project-store"
	}
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 5
	}
	log := logger.With(slog.String("component", "circuit_breaker"))

	maxFailures := settings.MaxFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
		IsSuccessful: isSuccessful,
	})

	return &ProjectStore{next: next, cb: cb}
}

// State reports the current breaker state, e.g. "closed" or "open".
func (s *ProjectStore) State() string {
	return s.cb.State().String()
}

// isSuccessful decides which errors count against the backend. Missing rows,
// rejected entities and canceled requests say nothing about its health.
func isSuccessful(err error) bool {
	return err == nil ||
		store.IsNotFoundError(err) ||
		errors.Is(err, store.ErrInvalidEntity) ||
		errors.Is(err, store.ErrDuplicate) ||
		errors.Is(err, context.Canceled)
}

func (s *ProjectStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := s.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return result, err
}

// FindAll implements store.ProjectStore.FindAll through the breaker.
func (s *ProjectStore) FindAll(ctx context.Context) ([]*domain.Project, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.next.FindAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*domain.Project), nil
}

// FindByID implements store.ProjectStore.FindByID through the breaker.
func (s *ProjectStore) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.next.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Project), nil
}

// Save implements store.ProjectStore.Save through the breaker.
func (s *ProjectStore) Save(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.next.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Project), nil
}

// DeleteByID implements store.ProjectStore.DeleteByID through the breaker.
func (s *ProjectStore) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.execute(func() (interface{}, error) {
		return nil, s.next.DeleteByID(ctx, id)
	})
	return err
}

// ExistsByID implements store.ProjectStore.ExistsByID through the breaker.
func (s *ProjectStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.next.ExistsByID(ctx, id)
	})
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

// Ping bypasses the breaker so health checks report the backend's real state.
func (s *ProjectStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}
