package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/obratrack/project-tracking-api/internal/dto"
	apierrors "github.com/obratrack/project-tracking-api/internal/errors"
	"github.com/obratrack/project-tracking-api/internal/middleware"
	"github.com/obratrack/project-tracking-api/internal/models"
	"github.com/obratrack/project-tracking-api/internal/repository"
	"github.com/obratrack/project-tracking-api/internal/services"
	"gorm.io/gorm"
)

// ProjectHandler exposes the project store over HTTP. Each authenticated
// user gets their own store instance from the manager.
type ProjectHandler struct {
	stores      *services.StoreManager
	projectRepo repository.ProjectRepository
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(stores *services.StoreManager, projectRepo repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{
		stores:      stores,
		projectRepo: projectRepo,
	}
}

// ListProjects refreshes the caller's store and returns its snapshot.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	store := h.stores.For(userID)
	store.FetchProjects()

	state := store.Snapshot()
	c.JSON(http.StatusOK, dto.ToProjectListResponse(state.Projects, state.IsAdmin, state.UserEmail))
}

// CreateProject inserts a project into the caller's organization.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		ModelURL    string `json:"model_url"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	store := h.stores.For(userID)
	err := store.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		ModelURL:    req.ModelURL,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
	})
}

// UpdateStatus sets the status of one project.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateStatusRequest struct {
		Status models.ProjectStatus `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	store := h.stores.For(userID)
	if err := store.UpdateProjectStatus(c.Param("id"), req.Status); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully",
	})
}

// UploadReport accepts a multipart report file and runs the completion
// workflow on it.
func (h *ProjectHandler) UploadReport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	project, err := h.projectRepo.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "Failed to load project")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "Report file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	store := h.stores.For(userID)
	err = store.UploadReport(
		c.Request.Context(),
		project,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Report uploaded successfully",
	})
}

// VerifySecurity runs the write-path self-test and returns its structured
// result regardless of success.
func (h *ProjectHandler) VerifySecurity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	store := h.stores.For(userID)
	result, err := store.VerifySecurity()
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoOrganization):
		apierrors.RespondWithError(c, http.StatusForbidden,
			apierrors.NewAPIError(apierrors.ErrCodeNoOrganization, err.Error()))
	case errors.Is(err, services.ErrProjectWithoutOrganization):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, apierrors.ErrPermissionDenied):
		apierrors.PermissionDenied(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
