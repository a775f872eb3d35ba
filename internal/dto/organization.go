package dto

import (
	"time"

	"github.com/obratrack/project-tracking-api/internal/models"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RUT        string `json:"rut,omitempty"`
	Giro       string `json:"giro,omitempty"`
	TaxAddress string `json:"tax_address,omitempty"`
	Slug       string `json:"slug,omitempty"`
}

// MembershipDTO represents one of the caller's organization memberships
type MembershipDTO struct {
	Organization OrganizationDTO   `json:"organization"`
	Role         models.MemberRole `json:"role"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:         org.ID,
		Name:       org.Name,
		RUT:        org.RUT,
		Giro:       org.Giro,
		TaxAddress: org.TaxAddress,
		Slug:       org.Slug,
	}
}

// ToMembershipDTO converts a membership to DTO
func ToMembershipDTO(member models.OrganizationMember) MembershipDTO {
	return MembershipDTO{
		Organization: ToOrganizationDTO(member.Organization),
		Role:         member.Role,
		CreatedAt:    member.CreatedAt,
	}
}
