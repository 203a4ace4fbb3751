package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/session"
	"go.uber.org/zap"
)

// POST /session
//
// Starts a shopping session. A valid account access token in the
// Authorization header ties the session to that user.
func CreateGuestSession(sessions *session.Manager, issuer *Issuer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID string
		if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
			claims, err := issuer.Parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			userID, _ = claims["sub"].(string)
		}

		sessionID := sessions.Create()
		token, expiresAt, err := issuer.IssueGuestToken(sessionID, userID)
		if err != nil {
			logger.Error("guest token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"sessionId": sessionID,
			"userId":    userID,
			"token":     token,
			"expiresAt": expiresAt,
		})
	}
}
