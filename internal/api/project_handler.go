package api

import (
	"log/slog"
	"net/http"

	"github.com/ehatamm/project/internal/api/shared"
	"github.com/ehatamm/project/internal/platform/logger"
	"github.com/ehatamm/project/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService service.ProjectService
	validator      service.ProjectValidator
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
// If logger is nil, a default logger will be used.
func NewProjectHandler(
	projectService service.ProjectService,
	validator service.ProjectValidator,
	logger *slog.Logger,
) *ProjectHandler {
	if projectService == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("projectService cannot be nil")
	}
	if validator == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("validator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProjectHandler{
		projectService: projectService,
		validator:      validator,
		logger:         logger.With(slog.String("component", "project_handler")),
	}
}

// Routes mounts the project endpoints on r, relative to /api/projects.
func (h *ProjectHandler) Routes(r chi.Router) {
	r.Get("/", h.ListProjects)
	r.Post("/", h.CreateProject)
	r.Get("/{id}", h.GetProject)
	r.Put("/{id}", h.UpdateProject)
	r.Delete("/{id}", h.DeleteProject)
}

// ListProjects handles GET /api/projects requests
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projectsToViews(projects))
}

// GetProject handles GET /api/projects/{id} requests
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projectToView(project))
}

// CreateProject handles POST /api/projects requests.
// A created project is answered with 200, not 201.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateProjectRequest
	if err := decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	in := req.toInput()
	if err := h.validator.ValidateProject(in); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("project created via API", slog.Int64("project_id", project.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, projectToView(project))
}

// UpdateProject handles PUT /api/projects/{id} requests
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateProjectRequest
	if err := decodeBody(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	in := req.toInput()
	if err := h.validator.ValidateProject(in); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projectToView(project))
}

// DeleteProject handles DELETE /api/projects/{id} requests
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
