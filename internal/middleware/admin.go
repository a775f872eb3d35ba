package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/obratrack/project-tracking-api/internal/database"
	apierrors "github.com/obratrack/project-tracking-api/internal/errors"
	"github.com/obratrack/project-tracking-api/internal/models"
)

// RequireAdmin restricts a route to profiles flagged is_admin. It runs after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var profile models.Profile
		if err := database.GetDB().First(&profile, "id = ?", userID).Error; err != nil {
			apierrors.Forbidden(c, "Administrator access required")
			c.Abort()
			return
		}

		if !profile.IsAdmin {
			apierrors.Forbidden(c, "Administrator access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
