package routes

import (
	"time"

	"github.com/google/uuid"
)

// Location is a boarding or destination point
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex:idx_location_name_province" json:"name"`
	Province  string    `gorm:"uniqueIndex:idx_location_name_province" json:"province,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Route connects two locations in one direction
type Route struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FromLocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_from_to" json:"from_location_id"`
	ToLocationID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_from_to" json:"to_location_id"`
	DistanceKm     float64   `json:"distance_km"`
	Active         bool      `gorm:"default:true" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	FromLocation *Location `json:"from_location,omitempty" gorm:"foreignKey:FromLocationID"`
	ToLocation   *Location `json:"to_location,omitempty" gorm:"foreignKey:ToLocationID"`
}

// TableName sets the table name for Location
func (Location) TableName() string {
	return "locations"
}

// TableName sets the table name for Route
func (Route) TableName() string {
	return "routes"
}

// Request models for route management

type CreateLocationRequest struct {
	Name     string `json:"name" binding:"required"`
	Province string `json:"province"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Province *string `json:"province"`
}

type CreateRouteRequest struct {
	FromLocationID string  `json:"from_location_id" binding:"required,uuid"`
	ToLocationID   string  `json:"to_location_id" binding:"required,uuid"`
	DistanceKm     float64 `json:"distance_km" binding:"omitempty,min=0"`
}

type UpdateRouteRequest struct {
	DistanceKm *float64 `json:"distance_km" binding:"omitempty,min=0"`
	Active     *bool    `json:"active"`
}
