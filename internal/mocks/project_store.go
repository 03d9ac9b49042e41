package mocks

import (
	"context"

	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockProjectStore is a mock of store.ProjectStore for use with testify/mock.
type MockProjectStore struct {
	mock.Mock
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

// FindAll is a mock implementation of store.ProjectStore.FindAll
func (m *MockProjectStore) FindAll(ctx context.Context) ([]*domain.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]*domain.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByID is a mock implementation of store.ProjectStore.FindByID
func (m *MockProjectStore) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if project, ok := args.Get(0).(*domain.Project); ok {
		return project, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save is a mock implementation of store.ProjectStore.Save
func (m *MockProjectStore) Save(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, p)
	if project, ok := args.Get(0).(*domain.Project); ok {
		return project, args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteByID is a mock implementation of store.ProjectStore.DeleteByID
func (m *MockProjectStore) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ExistsByID is a mock implementation of store.ProjectStore.ExistsByID
func (m *MockProjectStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Ping is a mock implementation of store.ProjectStore.Ping
func (m *MockProjectStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
