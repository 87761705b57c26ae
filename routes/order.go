package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/hedibld92/margueritecookie/controllers/order"
)

// SetupOrderRoutes registers the customer-facing order endpoints.
func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orderGroup := r.Group("/api/orders")
	{
		orderGroup.POST("", orderControllers.PlaceOrder(d.Orders, d.OrderHub))
		orderGroup.GET("/:id", orderControllers.GetOrder(d.Orders))
	}
}
