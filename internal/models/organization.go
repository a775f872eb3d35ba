package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is the tenant boundary: every project belongs to exactly one.
type Organization struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	RUT        string    `gorm:"column:rut;type:varchar(20)" json:"rut"`
	Giro       string    `gorm:"type:varchar(255)" json:"giro"`
	TaxAddress string    `gorm:"type:varchar(255)" json:"tax_address"`
	Slug       string    `gorm:"type:varchar(100);uniqueIndex" json:"slug"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Members  []OrganizationMember `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
	Projects []Project            `gorm:"foreignKey:OrganizationID" json:"projects,omitempty"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
