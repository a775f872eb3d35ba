package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/obratrack/project-tracking-api/internal/errors"
	"github.com/obratrack/project-tracking-api/internal/repository"
	"github.com/obratrack/project-tracking-api/internal/utils"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditRepo repository.AuditLogRepository) *AuditHandler {
	return &AuditHandler{
		auditRepo: auditRepo,
	}
}

// ListAuditLogs returns audit entries newest first with pagination.
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	entries, total, err := h.auditRepo.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to list audit logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audit_logs": entries,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
