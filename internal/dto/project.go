package dto

import (
	"time"

	"github.com/obratrack/project-tracking-api/internal/models"
)

// ProfileDTO represents a profile in API responses
type ProfileDTO struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	OrganizationID string               `json:"organization_id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	ModelURL       string               `json:"model_url"`
	ReportURL      *string              `json:"report_url"`
	Status         models.ProjectStatus `json:"status"`
	OwnerEmail     string               `json:"owner_email,omitempty"`
}

// ProjectListResponse is the store snapshot returned by the list endpoint.
type ProjectListResponse struct {
	Projects  []ProjectDTO `json:"projects"`
	IsAdmin   bool         `json:"is_admin"`
	UserEmail string       `json:"user_email"`
}

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:      profile.ID,
		Email:   profile.Email,
		IsAdmin: profile.IsAdmin,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:             project.ID,
		CreatedAt:      project.CreatedAt,
		OrganizationID: project.OrganizationID,
		Name:           project.Name,
		Description:    project.Description,
		ModelURL:       project.ModelURL,
		ReportURL:      project.ReportURL,
		Status:         project.Status,
	}

	// Owner email is present when the row was loaded with its owner join
	if project.Owner.ID != "" {
		dto.OwnerEmail = project.Owner.Email
	}

	return dto
}

// ToProjectListResponse converts a store snapshot to the list response
func ToProjectListResponse(projects []models.Project, isAdmin bool, userEmail string) ProjectListResponse {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}

	return ProjectListResponse{
		Projects:  items,
		IsAdmin:   isAdmin,
		UserEmail: userEmail,
	}
}
