package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	apperrors "github.com/obratrack/project-tracking-api/internal/errors"
	"github.com/obratrack/project-tracking-api/internal/models"
	"github.com/obratrack/project-tracking-api/internal/repository"
	"github.com/obratrack/project-tracking-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrNoOrganization             = errors.New("you must belong to an organization to create projects")
	ErrProjectWithoutOrganization = errors.New("project has no organization assigned")
)

// StoreDeps bundles everything a ProjectStore needs.
type StoreDeps struct {
	Projects  repository.ProjectRepository
	Orgs      repository.OrganizationRepository
	Profiles  repository.ProfileRepository
	AuditLogs repository.AuditLogRepository
	Reports   storage.Store
	Notifier  Notifier
}

// ProjectStore holds one user's view of the project list and the operations
// that keep it in sync with the database. The state fields are a cache: the
// database stays authoritative, and every mutating operation (except the
// status patch, which edits the cached entry in place) triggers a full
// reload.
type ProjectStore struct {
	userID string
	deps   StoreDeps

	mu        sync.RWMutex
	projects  []models.Project
	loading   bool
	isAdmin   bool
	userEmail string
}

// StoreState is a read-only snapshot of the store's reactive state.
type StoreState struct {
	Projects  []models.Project
	Loading   bool
	IsAdmin   bool
	UserEmail string
}

// NewProjectStore creates a store bound to one user.
func NewProjectStore(userID string, deps StoreDeps) *ProjectStore {
	return &ProjectStore{
		userID: userID,
		deps:   deps,
	}
}

// Snapshot returns a copy of the current state.
func (s *ProjectStore) Snapshot() StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, len(s.projects))
	copy(projects, s.projects)

	return StoreState{
		Projects:  projects,
		Loading:   s.loading,
		IsAdmin:   s.isAdmin,
		UserEmail: s.userEmail,
	}
}

// initUser resolves the user's profile into the store. A missing user or
// profile leaves the defaults (empty email, non-admin) in place silently.
func (s *ProjectStore) initUser() {
	if s.userID == "" {
		return
	}

	profile, err := s.deps.Profiles.FindByID(s.userID)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.userEmail = profile.Email
	s.isAdmin = profile.IsAdmin
	s.mu.Unlock()
}

// FetchProjects reloads the project list, owner emails included, newest
// first. On a backend error the previous list is kept rather than cleared.
func (s *ProjectStore) FetchProjects() {
	s.setLoading(true)
	defer s.setLoading(false)

	s.initUser()

	projects, err := s.deps.Projects.List()
	if err != nil {
		log.Printf("failed to fetch projects: %v", err)
		return
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
}

// CreateProjectInput carries the caller-supplied project fields. The
// organization is never taken from the caller.
type CreateProjectInput struct {
	Name        string
	Description string
	ModelURL    string
}

// CreateProject resolves the user's organization and inserts a project into
// it. The membership lookup takes the first row of an unordered LIMIT 1
// query; with multiple memberships the target organization is
// backend-determined.
func (s *ProjectStore) CreateProject(input CreateProjectInput) error {
	member, err := s.deps.Orgs.FirstMembershipForUser(s.userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoOrganization
		}
		return fmt.Errorf("failed to resolve organization membership: %w", err)
	}

	project := &models.Project{
		OrganizationID: member.OrganizationID,
		OwnerID:        s.userID,
		Name:           input.Name,
		Description:    input.Description,
		ModelURL:       input.ModelURL,
	}

	if err := s.deps.Projects.Create(project, s.userID); err != nil {
		if apperrors.IsPermissionDenied(err) {
			return fmt.Errorf("you do not have permission to create projects in this organization: %w", apperrors.ErrPermissionDenied)
		}
		return err
	}

	s.FetchProjects()
	return nil
}

// UpdateProjectStatus writes the new status and patches the cached entry in
// place. A write that succeeds server-side but has no matching cached entry
// is a silent no-op locally.
func (s *ProjectStore) UpdateProjectStatus(id string, status models.ProjectStatus) error {
	if err := s.deps.Projects.UpdateStatus(id, status, s.userID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Status = status
			break
		}
	}

	return nil
}

// UploadReport stores the report file, marks the project completed and
// notifies the owner. Steps: precondition, key derivation, upsert upload,
// public URL, row update returning the owner, best-effort email, reload.
// Only the email step is allowed to fail without aborting the operation.
func (s *ProjectStore) UploadReport(ctx context.Context, project *models.Project, filename, contentType string, file io.Reader) error {
	if project.OrganizationID == "" {
		return ErrProjectWithoutOrganization
	}

	key := storage.ReportKey(project.OrganizationID, project.ID, filename)

	if err := s.deps.Reports.Upload(ctx, key, file, contentType, true); err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	publicURL := s.deps.Reports.PublicURL(key)

	updated, err := s.deps.Projects.SetReport(project.ID, publicURL, s.userID)
	if err != nil {
		return apperrors.TranslateBackendError(err)
	}

	if updated.Owner.Email != "" {
		s.sendCompletionEmail(ctx, updated.Owner.Email, project.Name, publicURL)
	}

	s.FetchProjects()
	return nil
}

// sendCompletionEmail is best effort: failures are logged, never returned.
func (s *ProjectStore) sendCompletionEmail(ctx context.Context, to, projectName, reportURL string) {
	if s.deps.Notifier == nil {
		log.Println("completion email skipped: notifier not configured")
		return
	}

	if err := s.deps.Notifier.SendProjectCompleted(ctx, to, projectName, reportURL); err != nil {
		log.Printf("failed to send completion email for project %q: %v", projectName, err)
	}
}

func (s *ProjectStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
