package vehicles

import (
	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVehicleRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	admin := rg.Group("/admin/vehicles")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateVehicle)
		admin.GET("", controller.GetVehicles)
		admin.GET("/:id", controller.GetVehicle)
		admin.GET("/:id/seats", controller.GetVehicleSeats)
		admin.PUT("/:id", controller.UpdateVehicle)
		admin.DELETE("/:id", controller.DeleteVehicle)
	}
}
