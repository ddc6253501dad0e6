package middleware

import (
	"net/http"
	"strings"

	adminRepo "psrcustoms/database/repository/admin"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AdminAuthMiddleware.
const (
	ContextAdminKey   = "admin"
	ContextAdminIDKey = "adminID"
)

// AdminAuthMiddleware verifies the bearer token and loads the admin it
// belongs to. Any ambiguity (missing header, bad signature, expired token,
// unknown subject) fails closed with 401.
func AdminAuthMiddleware(repo adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration, then extract the subject.
		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		admin, err := repo.GetByID(adminID)
		if err != nil || admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Set(ContextAdminIDKey, admin.ID)
		c.Next()
	}
}
