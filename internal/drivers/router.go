package drivers

import (
	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupDriverRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	admin := rg.Group("/admin/drivers")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateDriver)
		admin.GET("", controller.GetDrivers)
		admin.GET("/:id", controller.GetDriver)
		admin.PUT("/:id", controller.UpdateDriver)
		admin.DELETE("/:id", controller.DeleteDriver)
	}
}
