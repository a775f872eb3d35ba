package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/obratrack/project-tracking-api/internal/dto"
	apierrors "github.com/obratrack/project-tracking-api/internal/errors"
	"github.com/obratrack/project-tracking-api/internal/middleware"
	"github.com/obratrack/project-tracking-api/internal/repository"
)

// OrganizationHandler exposes the caller's memberships.
type OrganizationHandler struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(orgRepo repository.OrganizationRepository) *OrganizationHandler {
	return &OrganizationHandler{
		orgRepo: orgRepo,
	}
}

// ListMemberships returns the organizations the caller belongs to, with
// their role in each.
func (h *OrganizationHandler) ListMemberships(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	memberships, err := h.orgRepo.ListMembershipsForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list organizations")
		return
	}

	items := make([]dto.MembershipDTO, len(memberships))
	for i, member := range memberships {
		items[i] = dto.ToMembershipDTO(member)
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": items,
	})
}
