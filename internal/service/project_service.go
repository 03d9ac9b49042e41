package service

import (
	"context"
	"log/slog"

	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/platform/logger"
	"github.com/ehatamm/project/internal/store"
)

// ProjectValidator checks create and update payloads.
// It is implemented by *validation.Validator.
type ProjectValidator interface {
	ValidateProject(in domain.ProjectInput) error
}

// ProjectService provides project-related operations.
type ProjectService interface {
	// ListAll returns every stored project in the store's natural order.
	ListAll(ctx context.Context) ([]*domain.Project, error)

	// GetByID returns the project or a *ProjectNotFoundError.
	GetByID(ctx context.Context, id int64) (*domain.Project, error)

	// Create validates in and stores a new project.
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)

	// Update replaces name, description and dates of an existing project.
	// The id and creation time are preserved.
	Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error)

	// Delete removes a project, failing with a *ProjectNotFoundError when absent.
	Delete(ctx context.Context, id int64) error
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	projectStore store.ProjectStore
	validator    ProjectValidator
	logger       *slog.Logger
}

// NewProjectService creates a new ProjectService.
// It returns an error if any of the required dependencies are nil.
func NewProjectService(
	projectStore store.ProjectStore,
	validator ProjectValidator,
	logger *slog.Logger,
) (ProjectService, error) {
	if projectStore == nil {
		return nil, &ProjectServiceError{Operation: "create_service", Message: "projectStore cannot be nil"}
	}
	if validator == nil {
		return nil, &ProjectServiceError{Operation: "create_service", Message: "validator cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &projectServiceImpl{
		projectStore: projectStore,
		validator:    validator,
		logger:       logger.With(slog.String("component", "project_service")),
	}, nil
}

func (s *projectServiceImpl) ListAll(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projectStore.FindAll(ctx)
	if err != nil {
		return nil, NewProjectServiceError("list_projects", "failed to list projects", 0, err)
	}
	return projects, nil
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.projectStore.FindByID(ctx, id)
	if err != nil {
		return nil, NewProjectServiceError("get_project", "failed to get project", id, err)
	}
	return project, nil
}

func (s *projectServiceImpl) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.ValidateProject(in); err != nil {
		log.Debug("project input rejected", slog.String("error", err.Error()))
		return nil, err
	}

	saved, err := s.projectStore.Save(ctx, domain.NewProject(in))
	if err != nil {
		return nil, NewProjectServiceError("create_project", "failed to save project", 0, err)
	}

	log.Info("project created", slog.Int64("project_id", saved.ID))
	return saved, nil
}

func (s *projectServiceImpl) Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.ValidateProject(in); err != nil {
		log.Debug("project input rejected",
			slog.Int64("project_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	existing, err := s.projectStore.FindByID(ctx, id)
	if err != nil {
		return nil, NewProjectServiceError("update_project", "failed to load project", id, err)
	}

	existing.Apply(in)

	saved, err := s.projectStore.Save(ctx, existing)
	if err != nil {
		return nil, NewProjectServiceError("update_project", "failed to save project", id, err)
	}

	log.Info("project updated", slog.Int64("project_id", saved.ID))
	return saved, nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.projectStore.ExistsByID(ctx, id)
	if err != nil {
		return NewProjectServiceError("delete_project", "failed to check project existence", id, err)
	}
	if !exists {
		return NewProjectNotFoundError(id)
	}

	if err := s.projectStore.DeleteByID(ctx, id); err != nil {
		return NewProjectServiceError("delete_project", "failed to delete project", id, err)
	}

	log.Info("project deleted", slog.Int64("project_id", id))
	return nil
}
