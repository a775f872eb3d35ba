package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/obratrack/project-tracking-api/internal/database"
	"github.com/obratrack/project-tracking-api/internal/models"
	"github.com/obratrack/project-tracking-api/internal/repository"
	"github.com/obratrack/project-tracking-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubStore is an in-memory storage backend for handler tests.
type stubStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newStubStore() *stubStore {
	return &stubStore{objects: make(map[string][]byte)}
}

func (s *stubStore) Upload(ctx context.Context, key string, r io.Reader, contentType string, upsert bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !upsert {
		if _, ok := s.objects[key]; ok {
			return errors.New("object already exists")
		}
	}
	s.objects[key] = data
	return nil
}

func (s *stubStore) PublicURL(key string) string {
	return "https://storage.test/reports/" + key
}

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	reports *stubStore
	handler *ProjectHandler
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.Profile{},
		&models.Organization{},
		&models.OrganizationMember{},
		&models.Project{},
		&models.AuditLog{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	suite.reports = newStubStore()
	projectRepo := repository.NewProjectRepository(suite.db)
	manager := services.NewStoreManager(services.StoreDeps{
		Projects:  projectRepo,
		Orgs:      repository.NewOrganizationRepository(suite.db),
		Profiles:  repository.NewProfileRepository(suite.db),
		AuditLogs: repository.NewAuditLogRepository(suite.db),
		Reports:   suite.reports,
	})
	suite.handler = NewProjectHandler(manager, projectRepo)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *ProjectHandlerTestSuite) createTestProfile(email string) *models.Profile {
	profile := &models.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(profile).Error)
	return profile
}

func (suite *ProjectHandlerTestSuite) createTestOrganization(name string) *models.Organization {
	org := &models.Organization{
		ID:   uuid.NewString(),
		Name: name,
	}
	suite.Require().NoError(suite.db.Create(org).Error)
	return org
}

func (suite *ProjectHandlerTestSuite) addMember(orgID, userID string, role models.MemberRole) {
	member := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
	suite.Require().NoError(suite.db.Create(member).Error)
}

func (suite *ProjectHandlerTestSuite) createTestProject(name, orgID, ownerID string) *models.Project {
	project := &models.Project{
		OrganizationID: orgID,
		OwnerID:        ownerID,
		Name:           name,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

// Helper function to create authenticated context
func (suite *ProjectHandlerTestSuite) createAuthContext(method, url string, body []byte, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != "" {
		c.Set("user_id", userID)
	}

	return c, w
}

func (suite *ProjectHandlerTestSuite) TestListProjects_Unauthorized() {
	c, w := suite.createAuthContext(http.MethodGet, "/api/projects", nil, "")

	suite.handler.ListProjects(c)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_ReturnsStateSnapshot() {
	profile := suite.createTestProfile("member@example.com")
	org := suite.createTestOrganization("Constructora Sur")
	suite.addMember(org.ID, profile.ID, models.RoleMember)
	suite.createTestProject("Edificio Central", org.ID, profile.ID)

	c, w := suite.createAuthContext(http.MethodGet, "/api/projects", nil, profile.ID)
	suite.handler.ListProjects(c)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Projects []struct {
			Name       string `json:"name"`
			Status     string `json:"status"`
			OwnerEmail string `json:"owner_email"`
		} `json:"projects"`
		IsAdmin   bool   `json:"is_admin"`
		UserEmail string `json:"user_email"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Projects, 1)
	suite.Equal("Edificio Central", resp.Projects[0].Name)
	suite.Equal("Pendiente", resp.Projects[0].Status)
	suite.Equal("member@example.com", resp.Projects[0].OwnerEmail)
	suite.False(resp.IsAdmin)
	suite.Equal("member@example.com", resp.UserEmail)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	profile := suite.createTestProfile("member@example.com")
	org := suite.createTestOrganization("Constructora Sur")
	suite.addMember(org.ID, profile.ID, models.RoleMember)

	body, _ := json.Marshal(map[string]string{
		"name":        "Edificio Central",
		"description": "Torre de oficinas",
	})
	c, w := suite.createAuthContext(http.MethodPost, "/api/projects", body, profile.ID)
	suite.handler.CreateProject(c)

	suite.Equal(http.StatusCreated, w.Code)

	var project models.Project
	suite.Require().NoError(suite.db.First(&project).Error)
	suite.Equal(org.ID, project.OrganizationID)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_NoOrganization() {
	profile := suite.createTestProfile("alone@example.com")

	body, _ := json.Marshal(map[string]string{"name": "Edificio Central"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/projects", body, profile.ID)
	suite.handler.CreateProject(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var apiErr struct {
		Code string `json:"code"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &apiErr))
	suite.Equal("NO_ORGANIZATION", apiErr.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_MissingName() {
	profile := suite.createTestProfile("member@example.com")

	body, _ := json.Marshal(map[string]string{"description": "sin nombre"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/projects", body, profile.ID)
	suite.handler.CreateProject(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateStatus_Success() {
	profile := suite.createTestProfile("member@example.com")
	org := suite.createTestOrganization("Constructora Sur")
	suite.addMember(org.ID, profile.ID, models.RoleMember)
	project := suite.createTestProject("Edificio Central", org.ID, profile.ID)

	body, _ := json.Marshal(map[string]string{"status": "En Revisión"})
	c, w := suite.createAuthContext(http.MethodPatch, "/api/projects/"+project.ID+"/status", body, profile.ID)
	c.Params = gin.Params{{Key: "id", Value: project.ID}}
	suite.handler.UpdateStatus(c)

	suite.Equal(http.StatusOK, w.Code)

	var row models.Project
	suite.Require().NoError(suite.db.First(&row, "id = ?", project.ID).Error)
	suite.Equal(models.StatusEnRevision, row.Status)
}

func (suite *ProjectHandlerTestSuite) TestUpdateStatus_UnknownProject() {
	profile := suite.createTestProfile("member@example.com")

	body, _ := json.Marshal(map[string]string{"status": "Completado"})
	c, w := suite.createAuthContext(http.MethodPatch, "/api/projects/missing/status", body, profile.ID)
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	suite.handler.UpdateStatus(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUploadReport_Success() {
	profile := suite.createTestProfile("owner@example.com")
	org := suite.createTestOrganization("Constructora Sur")
	suite.addMember(org.ID, profile.ID, models.RoleMember)
	project := suite.createTestProject("Edificio Central", org.ID, profile.ID)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "Informe Final (v2).pdf")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("%PDF-1.4"))
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects/"+project.ID+"/report", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", profile.ID)
	c.Params = gin.Params{{Key: "id", Value: project.ID}}

	suite.handler.UploadReport(c)

	suite.Equal(http.StatusOK, w.Code)

	expectedKey := org.ID + "/" + project.ID + "/Informe_Final__v2_.pdf"
	suite.Contains(suite.reports.objects, expectedKey)

	var row models.Project
	suite.Require().NoError(suite.db.First(&row, "id = ?", project.ID).Error)
	suite.Equal(models.StatusCompletado, row.Status)
	suite.Require().NotNil(row.ReportURL)
	suite.Equal("https://storage.test/reports/"+expectedKey, *row.ReportURL)
}

func (suite *ProjectHandlerTestSuite) TestUploadReport_MissingFile() {
	profile := suite.createTestProfile("owner@example.com")
	org := suite.createTestOrganization("Constructora Sur")
	project := suite.createTestProject("Edificio Central", org.ID, profile.ID)

	c, w := suite.createAuthContext(http.MethodPost, "/api/projects/"+project.ID+"/report", nil, profile.ID)
	c.Params = gin.Params{{Key: "id", Value: project.ID}}
	suite.handler.UploadReport(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUploadReport_UnknownProject() {
	profile := suite.createTestProfile("owner@example.com")

	c, w := suite.createAuthContext(http.MethodPost, "/api/projects/missing/report", nil, profile.ID)
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	suite.handler.UploadReport(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestVerifySecurity_ReportsFailureAsData() {
	profile := suite.createTestProfile("auditor@example.com")
	org := suite.createTestOrganization("Constructora Sur")
	suite.addMember(org.ID, profile.ID, models.RoleAuditor)

	c, w := suite.createAuthContext(http.MethodPost, "/api/security/verify", nil, profile.ID)
	suite.handler.VerifySecurity(c)

	suite.Equal(http.StatusOK, w.Code)

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.False(result.Success)
	suite.Contains(result.Message, "auditor")
}

func (suite *ProjectHandlerTestSuite) TestVerifySecurity_Success() {
	profile := suite.createTestProfile("member@example.com")
	org := suite.createTestOrganization("Constructora Sur")
	suite.addMember(org.ID, profile.ID, models.RoleMember)

	c, w := suite.createAuthContext(http.MethodPost, "/api/security/verify", nil, profile.ID)
	suite.handler.VerifySecurity(c)

	suite.Equal(http.StatusOK, w.Code)

	var result struct {
		Success bool `json:"success"`
		Log     *struct {
			Action string `json:"action"`
		} `json:"log"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.True(result.Success)
	suite.Require().NotNil(result.Log)
	suite.Equal("INSERT", result.Log.Action)
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
