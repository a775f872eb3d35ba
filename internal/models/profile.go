package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the per-user row. Its ID doubles as the authenticated user ID,
// so the session stores exactly this value.
type Profile struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Memberships []OrganizationMember `gorm:"foreignKey:UserID" json:"-"`
	Projects    []Project            `gorm:"foreignKey:OwnerID" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
