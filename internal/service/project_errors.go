package service

import (
	"errors"
	"fmt"

	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/store"
)

// ErrProjectNotFound indicates that the referenced project does not exist.
// API layer should map this to HTTP 404 Not Found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectNotFoundError carries the id that could not be found.
// It matches ErrProjectNotFound with errors.Is.
type ProjectNotFoundError struct {
	ID int64
}

// NewProjectNotFoundError creates a ProjectNotFoundError for id.
func NewProjectNotFoundError(id int64) *ProjectNotFoundError {
	return &ProjectNotFoundError{ID: id}
}

// Error returns the message shown to API callers.
func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("Project not found with id: %d", e.ID)
}

// Is reports whether target is ErrProjectNotFound.
func (e *ProjectNotFoundError) Is(target error) bool {
	return target == ErrProjectNotFound
}

// ProjectServiceError wraps errors from the project service with context.
type ProjectServiceError struct {
	// Operation is the operation that failed (e.g., "create_project", "delete_project")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ProjectServiceError.
func (e *ProjectServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("project service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("project service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProjectServiceError) Unwrap() error {
	return e.Err
}

// NewProjectServiceError creates a new ProjectServiceError.
// Validation errors and store not-found errors for id are translated into
// their service-level forms instead of being wrapped.
func NewProjectServiceError(operation, message string, id int64, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrProjectNotFound) || errors.Is(err, domain.ErrValidation) {
		return err
	}

	if errors.Is(err, store.ErrProjectNotFound) {
		return NewProjectNotFoundError(id)
	}

	return &ProjectServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
