package repository

import (
	"fmt"

	"github.com/obratrack/project-tracking-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create inserts a project and its INSERT audit entry atomically.
func (r *GormProjectRepository) Create(project *models.Project, actorID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		entry := &models.AuditLog{
			OrganizationID: project.OrganizationID,
			UserID:         actorID,
			Action:         models.AuditActionInsert,
			TargetTable:    "projects",
			TargetID:       project.ID,
			Details:        fmt.Sprintf("project %q created", project.Name),
		}
		return tx.Create(entry).Error
	})
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id string, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// List returns all projects, owner preloaded, newest first.
func (r *GormProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("Owner").
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateStatus sets the status field and records the UPDATE audit entry.
func (r *GormProjectRepository) UpdateStatus(id string, status models.ProjectStatus, actorID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Project{}).
			Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}

		entry := &models.AuditLog{
			OrganizationID: project.OrganizationID,
			UserID:         actorID,
			Action:         models.AuditActionUpdate,
			TargetTable:    "projects",
			TargetID:       id,
			Details:        fmt.Sprintf("status set to %q", status),
		}
		return tx.Create(entry).Error
	})
}

// SetReport sets report_url, forces status to Completado and returns the
// updated row with its owner preloaded, all in one transaction.
func (r *GormProjectRepository) SetReport(id string, reportURL string, actorID string) (*models.Project, error) {
	var updated models.Project

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"report_url": reportURL,
				"status":     models.StatusCompletado,
			}).Error; err != nil {
			return err
		}

		if err := tx.Preload("Owner").First(&updated, "id = ?", id).Error; err != nil {
			return err
		}

		entry := &models.AuditLog{
			OrganizationID: updated.OrganizationID,
			UserID:         actorID,
			Action:         models.AuditActionUpdate,
			TargetTable:    "projects",
			TargetID:       id,
			Details:        "report uploaded, status set to Completado",
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
