package cookieController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/store"
)

// DeleteCookie removes a catalog entry. Carts and orders that snapshotted the
// cookie are untouched; there is no cascading cleanup.
func DeleteCookie(cookies *store.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cookies.Delete(c.Param("id")); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cookie deleted successfully"})
	}
}
