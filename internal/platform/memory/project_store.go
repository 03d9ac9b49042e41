// Package memory provides an in-process store.ProjectStore. Data lives only
// as long as the process; it backs the "memory" database driver and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/store"
)

// ProjectStore keeps projects in a map guarded by a RWMutex. Values are
// cloned on the way in and out so callers never share state with the store.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[int64]*domain.Project
	nextID   int64
	now      func() time.Time
}

// Option configures a ProjectStore.
type Option func(*ProjectStore)

// WithClock replaces the clock used to stamp CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *ProjectStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewProjectStore returns an empty store. IDs start at 1.
func NewProjectStore(opts ...Option) *ProjectStore {
	s := &ProjectStore{
		projects: make(map[int64]*domain.Project),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ store.ProjectStore = (*ProjectStore)(nil)

func (s *ProjectStore) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p.Clone())
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (s *ProjectStore) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return p.Clone(), nil
}

func (s *ProjectStore) Save(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, store.ErrInvalidEntity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := p.Clone()
	now := s.now().UTC()

	if saved.ID == 0 {
		s.nextID++
		saved.ID = s.nextID
		saved.CreatedAt = now
	} else {
		existing, ok := s.projects[saved.ID]
		if !ok {
			return nil, store.ErrProjectNotFound
		}
		saved.CreatedAt = existing.CreatedAt
	}
	saved.UpdatedAt = now

	s.projects[saved.ID] = saved
	return saved.Clone(), nil
}

func (s *ProjectStore) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.projects, id)
	return nil
}

func (s *ProjectStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.projects[id]
	return ok, nil
}

// Ping always succeeds.
func (s *ProjectStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
