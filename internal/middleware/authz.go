package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itacatech/internal/authz"
	"itacatech/internal/models"
)

// RequireAdmin blocks non-admin identities from team administration routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no role in context"})
			return
		}
		role, _ := v.(string)
		if !authz.IsAdmin(models.UserRole(role)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
