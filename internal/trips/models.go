package trips

import (
	"time"

	"coachbooking/internal/pricing"
	coachroutes "coachbooking/internal/routes"
	"coachbooking/internal/vehicles"

	"github.com/google/uuid"
)

// Trip statuses
const (
	TripStatusScheduled = "SCHEDULED"
	TripStatusDeparted  = "DEPARTED"
	TripStatusCancelled = "CANCELLED"
)

// TripPrice is the price record for a route/vehicle-type combination.
// TypeTrip distinguishes fare classes (e.g. standard vs holiday pricing).
type TripPrice struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RouteID     uuid.UUID `gorm:"type:uuid;index;not null" json:"route_id"`
	VehicleType string    `gorm:"type:varchar(20);not null" json:"vehicle_type"`
	PriceTrip   float64   `gorm:"not null" json:"priceTrip"`
	TypeTrip    string    `gorm:"type:varchar(30);default:'STANDARD'" json:"typeTrip"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Trip is one scheduled departure of a vehicle over a route. TotalTime
// is the advertised journey duration in "HH:MM:SS" form. BasePrice is a
// flat per-seat fallback used when no price record is attached.
type Trip struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RouteID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"route_id"`
	VehicleID uuid.UUID  `gorm:"type:uuid;index;not null" json:"vehicle_id"`
	DriverID  *uuid.UUID `gorm:"type:uuid" json:"driver_id,omitempty"`
	PriceID   *uuid.UUID `gorm:"type:uuid" json:"price_id,omitempty"`
	StartDate string     `gorm:"type:date;not null;index" json:"startDate"`
	StartTime string     `gorm:"type:varchar(8);not null" json:"startTime"`
	TotalTime string     `gorm:"type:varchar(8);not null" json:"totalTime"`
	Status    string     `gorm:"type:varchar(20);check:status IN ('SCHEDULED', 'DEPARTED', 'CANCELLED');default:'SCHEDULED'" json:"status"`
	BasePrice float64    `json:"basePrice"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Route   *coachroutes.Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	Vehicle *vehicles.Vehicle  `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Price   *TripPrice         `json:"price,omitempty" gorm:"foreignKey:PriceID"`
}

// TableName sets the table name for TripPrice
func (TripPrice) TableName() string {
	return "trip_prices"
}

// TableName sets the table name for Trip
func (Trip) TableName() string {
	return "trips"
}

// UnitPrice resolves the per-seat price through the unified accessor:
// the attached price record first, the flat base price second, zero
// last. Every caller goes through this method; no code path reads the
// price fields directly.
func (t *Trip) UnitPrice() float64 {
	var amt pricing.Amount
	if t.Price != nil {
		amt = pricing.NewAmount(t.Price.PriceTrip)
	}
	return pricing.UnitPrice(amt, t.BasePrice)
}

// Request models for trip management

type CreateTripRequest struct {
	RouteID   string         `json:"route_id" binding:"required,uuid"`
	VehicleID string         `json:"vehicle_id" binding:"required,uuid"`
	DriverID  string         `json:"driver_id" binding:"omitempty,uuid"`
	PriceID   string         `json:"price_id" binding:"omitempty,uuid"`
	StartDate string         `json:"startDate" binding:"required,datetime=2006-01-02"`
	StartTime string         `json:"startTime" binding:"required"`
	TotalTime string         `json:"totalTime" binding:"required"`
	BasePrice pricing.Amount `json:"basePrice"`
}

type UpdateTripRequest struct {
	DriverID  *string         `json:"driver_id" binding:"omitempty,uuid"`
	PriceID   *string         `json:"price_id" binding:"omitempty,uuid"`
	StartDate *string         `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	StartTime *string         `json:"startTime"`
	Status    *string         `json:"status" binding:"omitempty,oneof=SCHEDULED DEPARTED CANCELLED"`
	BasePrice *pricing.Amount `json:"basePrice"`
}

type CreateTripPriceRequest struct {
	RouteID     string         `json:"route_id" binding:"required,uuid"`
	VehicleType string         `json:"vehicle_type" binding:"required"`
	PriceTrip   pricing.Amount `json:"priceTrip" binding:"required"`
	TypeTrip    string         `json:"typeTrip"`
}

type UpdateTripPriceRequest struct {
	PriceTrip *pricing.Amount `json:"priceTrip"`
	TypeTrip  *string         `json:"typeTrip"`
}

type SearchTripsRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}
