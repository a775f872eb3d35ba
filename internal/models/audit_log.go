package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions recorded by the repository layer.
const (
	AuditActionInsert = "INSERT"
	AuditActionUpdate = "UPDATE"
)

// AuditLog is an append-only record of data-mutating actions. Rows are
// written by the repositories in the same transaction as the mutation they
// describe; application code only ever reads them.
type AuditLog struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	OrganizationID string    `gorm:"type:uuid;index" json:"organization_id"`
	UserID         string    `gorm:"type:uuid;index" json:"user_id"`
	Action         string    `gorm:"type:varchar(20);not null" json:"action"`
	TargetTable    string    `gorm:"type:varchar(64);not null" json:"target_table"`
	TargetID       string    `gorm:"type:uuid;index" json:"target_id"`
	Details        string    `gorm:"type:text" json:"details"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
