package services

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/obratrack/project-tracking-api/internal/errors"
	"github.com/obratrack/project-tracking-api/internal/models"
	"gorm.io/gorm"
)

// SecurityTestResult is the structured outcome of VerifySecurity. Unlike the
// store's other operations it reports most failure classes as data instead
// of errors, so callers can inspect which stage broke.
type SecurityTestResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Project *models.Project  `json:"project,omitempty"`
	Log     *models.AuditLog `json:"log,omitempty"`
}

// VerifySecurity probes the write path end to end: it creates a throwaway
// project under the user's organization and immediately checks that a
// matching INSERT audit entry is visible. Auditors are rejected before any
// insert is attempted. The dummy project is intentionally left behind.
func (s *ProjectStore) VerifySecurity() (*SecurityTestResult, error) {
	member, err := s.deps.Orgs.FirstMembershipForUser(s.userID)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve organization membership: %w", err)
	}

	if !member.Role.CanCreateProjects() {
		return &SecurityTestResult{
			Success: false,
			Message: fmt.Sprintf("role %q does not have permission to create projects", member.Role),
		}, nil
	}

	dummy := &models.Project{
		OrganizationID: member.OrganizationID,
		OwnerID:        s.userID,
		Name:           fmt.Sprintf("Security Test %s", time.Now().Format(time.RFC3339)),
		Description:    "Temporary project for security verification",
		ModelURL:       "https://example.com/dummy",
		Status:         models.StatusPendiente,
	}

	if err := s.deps.Projects.Create(dummy, s.userID); err != nil {
		if apperrors.IsPermissionDenied(err) {
			return &SecurityTestResult{
				Success: false,
				Message: fmt.Sprintf("permission denied: role %q may be insufficient or the policy does not match", member.Role),
			}, nil
		}
		return nil, err
	}

	entry, err := s.deps.AuditLogs.FindByTarget(dummy.ID, models.AuditActionInsert)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SecurityTestResult{
				Success: false,
				Message: "no audit log entry returned; the policy may be hiding it or the write-path hook failed",
				Project: dummy,
			}, nil
		}
		return &SecurityTestResult{
			Success: false,
			Message: "error accessing audit logs: " + err.Error(),
			Project: dummy,
		}, nil
	}

	return &SecurityTestResult{
		Success: true,
		Message: "audit log verified",
		Project: dummy,
		Log:     entry,
	}, nil
}
