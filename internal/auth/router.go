package auth

import (
	"github.com/gin-gonic/gin"

	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/middleware"
)

// SetupAuthRoutes registers the auth flow and the admin user management
// endpoints.
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", controller.Register)
		auth.POST("/login", controller.Login)
		auth.POST("/refresh", controller.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.JWTAuth(cfg))
		{
			protected.PUT("/change-password", controller.ChangePassword)
			protected.GET("/me", controller.GetMe)
		}
	}

	admin := rg.Group("/admin/users")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListUsers)
		admin.PUT("/:id/role", controller.UpdateUserRole)
	}
}
