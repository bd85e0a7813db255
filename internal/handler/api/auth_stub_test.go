//go:build unit

package api_test

import (
	"net/http"

	"rugboost-api/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stubAuth stands in for RequireAuth: any Authorization header authenticates
// as userID with role.
func stubAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}
