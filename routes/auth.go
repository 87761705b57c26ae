package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/hedibld92/margueritecookie/controllers/admin"
	"github.com/hedibld92/margueritecookie/middleware"
)

// SetupAuthRoutes registers the "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", adminController.Login(d.Sessions))
		authGroup.POST("/logout", adminController.Logout(d.Sessions))
		authGroup.GET("/me", middleware.RequireAdmin(d.Sessions), adminController.CheckAuth())
	}
}
