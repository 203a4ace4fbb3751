package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/auth"
)

// ValidateToken requires a bearer token and exposes its session_id and
// user_id claims on the context.
func ValidateToken(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the token from the header
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}
		tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if sessionID, ok := claims["session_id"].(string); ok {
			c.Set("session_id", sessionID)
		}
		if userID, ok := claims["sub"].(string); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

// RequireSession rejects tokens that do not name a shopping session.
func RequireSession(c *gin.Context) {
	if c.GetString("session_id") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
		return
	}
	c.Next()
}
