package database

import (
	"coachbooking/internal/bookings"
	"coachbooking/internal/content"
	"coachbooking/internal/drivers"
	coachroutes "coachbooking/internal/routes"
	"coachbooking/internal/trips"
	"coachbooking/internal/users"
	"coachbooking/internal/vehicles"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&coachroutes.Location{},
		&coachroutes.Route{},
		&vehicles.Vehicle{},
		&vehicles.VehicleSeat{},
		&drivers.Driver{},
		&trips.TripPrice{},
		&trips.Trip{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
		&content.NewsPost{},
		&content.Banner{},
		&content.StaticPage{},
	)
}
