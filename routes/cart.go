package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/hedibld92/margueritecookie/controllers/cart"
)

// SetupCartRoutes registers the "/api/cart/*" endpoints. Every route is
// session-scoped: the cart belongs to the caller's session cookie.
func SetupCartRoutes(r *gin.Engine, d Deps) {
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(d.Cart))
		cartGroup.POST("/add", cartControllers.AddCartItem(d.Cart))
		cartGroup.PUT("/update/:cookieId", cartControllers.UpdateCartItem(d.Cart))
		cartGroup.DELETE("/remove/:cookieId", cartControllers.RemoveCartItem(d.Cart))
		cartGroup.POST("/clear", cartControllers.ClearCart(d.Cart))
	}
}
