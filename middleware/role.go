package middleware

import (
	"net/http"

	"psrcustoms/models"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects authenticated admins whose role does not match. With a
// single role today this never fires, but it keeps the 401/403 distinction
// in place for when more roles exist. Must run after AdminAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ContextAdminKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}
		admin, ok := val.(*models.AdminUser)
		if !ok || admin.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
