package bookings

import (
	"github.com/gin-gonic/gin"

	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/middleware"
)

// SetupBookingRoutes mounts the checkout flow. Everything here requires
// an authenticated customer.
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuth(cfg))
	{
		bookings.POST("", controller.CreateBooking)
		bookings.GET("", controller.GetMyBookings)
		bookings.GET("/:id", controller.GetBooking)
		bookings.POST("/:id/confirm", controller.ConfirmBooking)
		bookings.POST("/:id/cancel", controller.CancelBooking)
	}
}
