package api

import (
	"cloud.google.com/go/civil"
	"github.com/ehatamm/project/internal/domain"
)

// CreateProjectRequest is the body of POST /api/projects.
// Dates use the ISO-8601 calendar format, e.g. "2024-01-15".
type CreateProjectRequest struct {
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	StartDate   *civil.Date `json:"startDate"`
	EndDate     *civil.Date `json:"endDate"`
}

// UpdateProjectRequest is the body of PUT /api/projects/{id}. It has the
// same shape and rules as CreateProjectRequest.
type UpdateProjectRequest CreateProjectRequest

// ProjectView is the read shape of a project. Audit timestamps are omitted.
type ProjectView struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	StartDate   civil.Date `json:"startDate"`
	EndDate     civil.Date `json:"endDate"`
}

// InfoResponse describes the running service.
type InfoResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func (req CreateProjectRequest) toInput() domain.ProjectInput {
	return domain.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
}

func (req UpdateProjectRequest) toInput() domain.ProjectInput {
	return CreateProjectRequest(req).toInput()
}

// projectToView converts a domain.Project to a ProjectView
func projectToView(p *domain.Project) ProjectView {
	return ProjectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

func projectsToViews(projects []*domain.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, projectToView(p))
	}
	return views
}
