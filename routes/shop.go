package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/hedibld92/margueritecookie/controllers/checkout"
	contentController "github.com/hedibld92/margueritecookie/controllers/content"
	cookieController "github.com/hedibld92/margueritecookie/controllers/cookie"
)

// SetupShopRoutes registers the public storefront endpoints: browsing the
// catalog, reading the site content and starting a checkout.
func SetupShopRoutes(r *gin.Engine, d Deps) {
	r.GET("/api/cookies", cookieController.GetCookies(d.Cookies))
	r.GET("/api/cookies/:id", cookieController.GetCookieByID(d.Cookies))
	r.GET("/api/site-content", contentController.GetSiteContent(d.Content))
	r.POST("/api/checkout/session", checkoutControllers.CreateCheckoutSession())
}
