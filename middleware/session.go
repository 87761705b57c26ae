package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hedibld92/margueritecookie/session"
)

const sessionIDKey = "session_id"

// EnsureSession guarantees every request carries a session id: an existing
// cookie is reused, otherwise a fresh opaque id is minted and set. The
// session state itself is loaded lazily by whoever needs it, under the cart
// service's per-session lock.
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(session.CookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(session.CookieName, sid, int(session.TTL.Seconds()), "/", "", false, true)
		}
		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

// SessionID returns the request's session id set by EnsureSession.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
