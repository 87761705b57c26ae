package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/auth"
	"github.com/hedibld92/margueritecookie/session"
)

// RequireAdmin gates the admin routes. The browser panel authenticates with
// its session (IsAdmin flag set at login); non-browser clients send the
// bearer token issued by the same login.
func RequireAdmin(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			token := strings.TrimPrefix(header, "Bearer ")
			if err := auth.VerifyAdminToken(token); err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), SessionID(c))
		if err != nil || !sess.IsAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
