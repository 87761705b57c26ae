package adminController

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/auth"
	"github.com/hedibld92/margueritecookie/middleware"
	"github.com/hedibld92/margueritecookie/session"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
// Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD. A successful login
// marks the session as admin and additionally returns a bearer token for
// non-browser clients.
func Login(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Username != os.Getenv("ADMIN_USERNAME") || input.Password != os.Getenv("ADMIN_PASSWORD") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		sid := middleware.SessionID(c)
		sess, err := sessions.Get(c.Request.Context(), sid)
		if errors.Is(err, session.ErrNotFound) {
			sess = session.New(sid)
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}

		sess.IsAdmin = true
		if err := sessions.Save(c.Request.Context(), sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		token, err := auth.IssueAdminToken(input.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  gin.H{"username": input.Username, "role": "admin"},
			"token": token,
		})
	}
}

// POST /api/auth/logout
// Destroys the whole session, cart included.
func Logout(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Delete(c.Request.Context(), middleware.SessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to destroy session"})
			return
		}
		c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /api/auth/me — reached through RequireAdmin, so getting here means the
// caller is authenticated.
func CheckAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
	}
}
