// Package mocks provides centralized mock implementations for testing.
//
// MockProjectStore is built on testify/mock and suits tests that assert on
// the exact calls made. MockProjectService uses function fields with call
// tracking and suits handler tests that only need canned responses.
//
// Usage:
//
//	projectStore := new(mocks.MockProjectStore)
//	projectStore.On("FindByID", mock.Anything, int64(1)).Return(project, nil)
//
//	projectService := &mocks.MockProjectService{
//	    GetByIDFn: func(ctx context.Context, id int64) (*domain.Project, error) {
//	        return project, nil
//	    },
//	}
package mocks
