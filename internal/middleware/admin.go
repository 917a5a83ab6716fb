package middleware

import (
	"net/http" // HTTP status codes

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware checks the role claim set by JWTAuthMiddleware.
// The role is trusted for the token's whole lifetime; there is no
// re-check against the user store.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole) // Get role from context
		// Check if role exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		// Check if user role is admin
		if role != domain.RoleAdmin {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
