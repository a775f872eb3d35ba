package repository

import (
	"github.com/obratrack/project-tracking-api/internal/models"
	"github.com/obratrack/project-tracking-api/internal/utils"
)

// ProjectRepository defines the interface for project data access. Every
// mutation records a matching audit_logs row in the same transaction, which
// stands in for the original backend's trigger mechanism.
type ProjectRepository interface {
	// Create inserts a new project attributed to actorID.
	Create(project *models.Project, actorID string) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Project, error)

	// List returns all projects with their owner profile preloaded,
	// newest first.
	List() ([]models.Project, error)

	// UpdateStatus sets the status of the project with the given id.
	UpdateStatus(id string, status models.ProjectStatus, actorID string) error

	// SetReport sets report_url and forces status to Completado, returning
	// the updated row with its owner preloaded.
	SetReport(id string, reportURL string, actorID string) (*models.Project, error)
}

// OrganizationRepository defines the interface for organization and
// membership data access.
type OrganizationRepository interface {
	// Create creates a new organization
	Create(org *models.Organization) error

	// FindByID finds an organization by ID
	FindByID(id string) (*models.Organization, error)

	// AddMember adds a member to an organization
	AddMember(member *models.OrganizationMember) error

	// FirstMembershipForUser returns one membership row for the user,
	// LIMIT 1 with no ordering. When a user belongs to several
	// organizations the row returned is backend-determined; callers that
	// need a specific organization must not rely on this.
	FirstMembershipForUser(userID string) (*models.OrganizationMember, error)

	// ListMembershipsForUser lists all memberships of a user with the
	// organization preloaded.
	ListMembershipsForUser(userID string) ([]models.OrganizationMember, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// Create creates a new profile
	Create(profile *models.Profile) error

	// FindByID finds a profile by ID
	FindByID(id string) (*models.Profile, error)

	// FindByEmail finds a profile by email
	FindByEmail(email string) (*models.Profile, error)
}

// AuditLogRepository reads the append-only audit trail. Nothing here writes:
// audit rows are produced by the mutating repositories.
type AuditLogRepository interface {
	// FindByTarget returns the first audit entry for the given action and
	// target row, if any.
	FindByTarget(targetID, action string) (*models.AuditLog, error)

	// List returns audit entries newest first with pagination.
	List(params utils.PaginationParams) ([]models.AuditLog, int64, error)
}
