package repository

import (
	"github.com/obratrack/project-tracking-api/internal/database"
	"github.com/obratrack/project-tracking-api/internal/models"
	"github.com/obratrack/project-tracking-api/internal/utils"
	"gorm.io/gorm"
)

// GormAuditLogRepository is a GORM implementation of AuditLogRepository
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// FindByTarget returns the first audit entry matching the action and target
func (r *GormAuditLogRepository) FindByTarget(targetID, action string) (*models.AuditLog, error) {
	var entry models.AuditLog
	if err := r.db.Where("target_id = ? AND action = ?", targetID, action).
		Limit(1).
		Take(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns audit entries newest first with pagination
func (r *GormAuditLogRepository) List(params utils.PaginationParams) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog

	var total int64
	if err := r.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
