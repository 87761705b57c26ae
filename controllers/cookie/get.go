package cookieController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/store"
)

// GetCookies returns the full catalog. Served both publicly and to the admin
// panel. URL: GET /api/cookies, GET /admin/cookies
func GetCookies(cookies *store.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := cookies.ListAll()
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetCookieByID returns a single cookie. URL param: /api/cookies/:id
func GetCookieByID(cookies *store.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := cookies.FindByID(c.Param("id"))
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, cookie)
	}
}
