package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/Shamanthak-23-A/ecommerce-api/internal/utils" // JWT utility functions
	"github.com/gin-gonic/gin"                                // Gin web framework
)

// Context keys set by JWTAuthMiddleware
const (
	CtxUserID   = "userID"   // Authenticated user ID (int)
	CtxUsername = "username" // Authenticated username
	CtxRole     = "role"     // Authenticated role
)

// JWTAuthMiddleware validates bearer tokens and stores the caller's
// identity in the gin context. A missing header is 401; a token that
// fails to parse (bad signature, expired) is 403.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// Invalid or expired token: forbidden, not unauthorized
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(CtxUserID, claims.UserID)     // Store userID in context
		c.Set(CtxUsername, claims.Username) // Store username in context
		c.Set(CtxRole, claims.Role)         // Store role in context
		c.Next()                            // Proceed to the next handler
	}
}

// UserID returns the authenticated user's ID from the gin context.
// Only valid behind JWTAuthMiddleware.
func UserID(c *gin.Context) int {
	return c.GetInt(CtxUserID)
}
