package utils

import (
	"time" // Time for token expiration

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenTTL is the fixed validity window of a session token.
// There is no revocation: a token stays valid until it expires.
const TokenTTL = 24 * time.Hour

// JWT Claims
type Claims struct {
	UserID               int    `json:"userId"`   // Custom claim for user ID
	Username             string `json:"username"` // Custom claim for username
	Role                 string `json:"role"`     // Custom claim for role
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates a signed session token for a user
func GenerateJWT(user *domain.User, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		UserID:   user.ID,       // Custom claim for user ID
		Username: user.Username, // Custom claim for username
		Role:     user.Role,     // Custom claim for role
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)), // Token expires in 24 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),               // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
