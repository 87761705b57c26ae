package routes

import (
	"github.com/gin-gonic/gin"

	contentController "github.com/hedibld92/margueritecookie/controllers/content"
	cookieController "github.com/hedibld92/margueritecookie/controllers/cookie"
	orderControllers "github.com/hedibld92/margueritecookie/controllers/order"
	"github.com/hedibld92/margueritecookie/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin gate.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(d.Sessions))
	{
		// Catalog management
		cookieAdmin := adminGroup.Group("/cookies")
		{
			cookieAdmin.GET("", cookieController.GetCookies(d.Cookies))
			cookieAdmin.POST("", cookieController.CreateCookie(d.Cookies))
			cookieAdmin.PUT("/:id", cookieController.UpdateCookie(d.Cookies))
			cookieAdmin.DELETE("/:id", cookieController.DeleteCookie(d.Cookies))
			cookieAdmin.GET("/export-excel", cookieController.ExportCookiesToExcel(d.Cookies))
		}

		// Order management
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.ListOrders(d.Orders))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(d.Orders, d.OrderHub))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(d.Orders))
			orderAdmin.GET("/ws", d.OrderHub.Handler)
		}

		// Site content
		adminGroup.PUT("/site-content", contentController.UpdateSiteContent(d.Content))
	}
}
