package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Claretdelgado/bd-calvillo/pkg/auth"
)

// ContextKeyUserID is where the gate stores the verified user ID for
// downstream handlers.
const ContextKeyUserID = "user_id"

// TokenGate verifies the session token on protected routes. A missing
// credential is Forbidden; a present but invalid or expired one is
// Unauthorized. On success the embedded user ID is placed in the gin
// context and the request proceeds.
func (rs *RestfulServer) TokenGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "authorization token required"})
			return
		}

		// tolerate both a bare token and the Bearer convention
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		userID, err := auth.Verify(tokenStr, rs.JwtSecret, time.Now())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}
