package repository

import (
	"github.com/obratrack/project-tracking-api/internal/models"
	"gorm.io/gorm"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Create creates a new organization
func (r *GormOrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(id string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// AddMember adds a member to an organization
func (r *GormOrganizationRepository) AddMember(member *models.OrganizationMember) error {
	return r.db.Create(member).Error
}

// FirstMembershipForUser returns one membership row, LIMIT 1, no ORDER BY.
func (r *GormOrganizationRepository) FirstMembershipForUser(userID string) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	if err := r.db.Where("user_id = ?", userID).
		Limit(1).
		Take(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembershipsForUser lists all memberships of a user
func (r *GormOrganizationRepository) ListMembershipsForUser(userID string) ([]models.OrganizationMember, error) {
	var memberships []models.OrganizationMember
	if err := r.db.Preload("Organization").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
