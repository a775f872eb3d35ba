package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/obratrack/project-tracking-api/internal/database"
	"github.com/obratrack/project-tracking-api/internal/models"
	"github.com/obratrack/project-tracking-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrgTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Organization{},
		&models.OrganizationMember{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	gin.SetMode(gin.TestMode)
	return db
}

func TestOrganizationHandler_ListMemberships(t *testing.T) {
	db := setupOrgTestDB(t)

	profile := &models.Profile{ID: uuid.NewString(), Email: "member@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(profile).Error)

	org := &models.Organization{ID: uuid.NewString(), Name: "Constructora Sur", RUT: "76.123.456-7"}
	require.NoError(t, db.Create(org).Error)
	require.NoError(t, db.Create(&models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         profile.ID,
		Role:           models.RoleAdmin,
	}).Error)

	handler := NewOrganizationHandler(repository.NewOrganizationRepository(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
	c.Set("user_id", profile.ID)

	handler.ListMemberships(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Organizations []struct {
			Role         string `json:"role"`
			Organization struct {
				Name string `json:"name"`
				RUT  string `json:"rut"`
			} `json:"organization"`
		} `json:"organizations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Organizations, 1)
	require.Equal(t, "admin", resp.Organizations[0].Role)
	require.Equal(t, "Constructora Sur", resp.Organizations[0].Organization.Name)
	require.Equal(t, "76.123.456-7", resp.Organizations[0].Organization.RUT)
}

func TestOrganizationHandler_ListMemberships_Empty(t *testing.T) {
	db := setupOrgTestDB(t)

	profile := &models.Profile{ID: uuid.NewString(), Email: "alone@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(profile).Error)

	handler := NewOrganizationHandler(repository.NewOrganizationRepository(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
	c.Set("user_id", profile.ID)

	handler.ListMemberships(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Organizations []json.RawMessage `json:"organizations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Organizations)
}
