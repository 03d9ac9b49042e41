package mocks

import (
	"context"
	"sync"

	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/service"
)

// MockProjectService implements service.ProjectService for testing
type MockProjectService struct {
	// Custom behavior functions
	ListAllFn func(ctx context.Context) ([]*domain.Project, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Project, error)
	CreateFn  func(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	UpdateFn  func(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Default return values
	Project      *domain.Project
	Projects     []*domain.Project
	DefaultError error

	mu    sync.Mutex
	calls map[string]int
}

var _ service.ProjectService = (*MockProjectService)(nil)

func (m *MockProjectService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// CallCount returns how many times method has been invoked.
func (m *MockProjectService) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// ListAll implements the ProjectService.ListAll method
func (m *MockProjectService) ListAll(ctx context.Context) ([]*domain.Project, error) {
	m.record("ListAll")
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return m.Projects, m.DefaultError
}

// GetByID implements the ProjectService.GetByID method
func (m *MockProjectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Project, m.DefaultError
}

// Create implements the ProjectService.Create method
func (m *MockProjectService) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return m.Project, m.DefaultError
}

// Update implements the ProjectService.Update method
func (m *MockProjectService) Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, in)
	}
	return m.Project, m.DefaultError
}

// Delete implements the ProjectService.Delete method
func (m *MockProjectService) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
