package drivers

import (
	"time"

	"github.com/google/uuid"
)

// Driver is a coach driver in the back office roster
type Driver struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName      string     `gorm:"not null" json:"full_name"`
	Phone         string     `gorm:"type:varchar(20);not null" json:"phone"`
	LicenseNumber string     `gorm:"unique;not null" json:"license_number"`
	VehicleID     *uuid.UUID `gorm:"type:uuid;index" json:"vehicle_id,omitempty"`
	Active        bool       `gorm:"default:true" json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName sets the table name for Driver
func (Driver) TableName() string {
	return "drivers"
}

type CreateDriverRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
	VehicleID     string `json:"vehicle_id" binding:"omitempty,uuid"`
}

type UpdateDriverRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	VehicleID *string `json:"vehicle_id" binding:"omitempty,uuid"`
	Active    *bool   `json:"active"`
}
