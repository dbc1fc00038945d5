package vehicles

import (
	"time"

	"coachbooking/internal/seatmap"

	"github.com/google/uuid"
)

// Vehicle is one coach in the fleet. Type decides the seat layout and
// therefore the size and shape of the generated seat roster.
type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Type         string    `gorm:"type:varchar(20);not null;check:type IN ('NORMAL', 'LIMOUSINE', 'SLEEPER', 'DOUBLESLEEPER')" json:"type"`
	SeatCount    int       `gorm:"not null" json:"seat_count"`
	LicensePlate string    `gorm:"unique;not null" json:"license_plate"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Seats []VehicleSeat `json:"seats,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE;"`
}

// VehicleSeat is one physical seat of a vehicle, generated from the
// vehicle type's layout when the vehicle is created. Ordinal is the
// seat's position in the layout's canonical roster order; ID is unique
// within the vehicle's roster and is what selections key on.
type VehicleSeat struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_vehicle_ordinal" json:"vehicle_id"`
	Ordinal   int       `gorm:"not null;uniqueIndex:idx_vehicle_ordinal" json:"ordinal"`
	Name      string    `gorm:"not null" json:"name"`
	Floor     int       `gorm:"not null;default:1" json:"floor"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}

// TableName sets the table name for VehicleSeat
func (VehicleSeat) TableName() string {
	return "vehicle_seats"
}

// Layout resolves the vehicle's seat layout
func (v *Vehicle) Layout() (*seatmap.Layout, bool) {
	return seatmap.LayoutFor(v.Type)
}

// Request models for vehicle management

type CreateVehicleRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	LicensePlate string `json:"license_plate" binding:"required"`
}

type UpdateVehicleRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}
