package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	StatusPendiente  ProjectStatus = "Pendiente"
	StatusEnRevision ProjectStatus = "En Revisión"
	StatusCompletado ProjectStatus = "Completado"
)

// Project is the unit of work tracked by the system. ReportURL stays nil
// until a completion report is uploaded, which also forces the status to
// Completado. Projects are never deleted.
type Project struct {
	ID             string        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	OrganizationID string        `gorm:"type:uuid;not null;index" json:"organization_id"`
	OwnerID        string        `gorm:"type:uuid;index" json:"owner_id"`
	Name           string        `gorm:"type:varchar(255);not null" json:"name"`
	Description    string        `gorm:"type:text" json:"description"`
	ModelURL       string        `gorm:"type:text" json:"model_url"`
	ReportURL      *string       `gorm:"type:text" json:"report_url"`
	Status         ProjectStatus `gorm:"type:varchar(20);not null;default:'Pendiente'" json:"status"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Owner        Profile      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusPendiente
	}
	return nil
}
