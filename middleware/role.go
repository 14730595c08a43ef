package middleware

import (
	"net/http"

	"localserve/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to one side of the marketplace. It runs
// after JWTAuthMiddleware, which sets "userRole". Dispatch is on the closed
// Role type: an unexpected value is rejected, not treated as a default.
func RequireRole(want models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get("userRole")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		role, ok := val.(models.Role)
		if !ok || !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		switch role {
		case want:
			c.Next()
		case models.RoleCustomer, models.RoleProvider:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This action is not available for your account type"})
		}
	}
}
