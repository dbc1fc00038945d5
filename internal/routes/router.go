package routes

import (
	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRouteRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public read endpoints for the search form
	public := rg.Group("")
	{
		public.GET("/locations", controller.GetLocations)
		public.GET("/routes", controller.GetRoutes)
		public.GET("/routes/:id", controller.GetRoute)
	}

	// Back-office management
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.POST("/locations", controller.CreateLocation)
		admin.PUT("/locations/:id", controller.UpdateLocation)
		admin.DELETE("/locations/:id", controller.DeleteLocation)

		admin.POST("/routes", controller.CreateRoute)
		admin.PUT("/routes/:id", controller.UpdateRoute)
		admin.DELETE("/routes/:id", controller.DeleteRoute)
	}
}
