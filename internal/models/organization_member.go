package models

import "time"

type MemberRole string

const (
	RoleAdmin   MemberRole = "admin"
	RoleMember  MemberRole = "member"
	RoleAuditor MemberRole = "auditor"
)

// OrganizationMember grants a user a role within one organization. A user may
// hold zero, one or many memberships.
type OrganizationMember struct {
	OrganizationID string     `gorm:"type:uuid;primaryKey" json:"organization_id"`
	UserID         string     `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role           MemberRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt      time.Time  `json:"created_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	User         Profile      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// CanCreateProjects reports whether the role may create project rows.
// Auditors are read-only.
func (r MemberRole) CanCreateProjects() bool {
	return r == RoleAdmin || r == RoleMember
}
