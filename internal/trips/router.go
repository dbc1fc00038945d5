package trips

import (
	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTripRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public search and seat-map endpoints
	trips := rg.Group("/trips")
	{
		trips.GET("/search", controller.SearchTrips)
		trips.GET("/:id", controller.GetTrip)
		trips.GET("/:id/seats", controller.GetSeatRoster)
	}

	// Back-office trip and price management
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.POST("/trips", controller.CreateTrip)
		admin.PUT("/trips/:id", controller.UpdateTrip)
		admin.DELETE("/trips/:id", controller.DeleteTrip)

		admin.POST("/prices", controller.CreatePrice)
		admin.GET("/prices", controller.GetPrices)
		admin.PUT("/prices/:id", controller.UpdatePrice)
		admin.DELETE("/prices/:id", controller.DeletePrice)
	}
}
