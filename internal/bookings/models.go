package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. A PENDING booking holds its seats (rendered HOLD on
// the seat map); a CONFIRMED one owns them (rendered SOLD). Whether a
// pending hold should expire is a product decision for the booking
// contract, not something this service invents; no TTL is applied.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// Booking is one checkout attempt for a set of seats on a trip
type Booking struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	TripID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"trip_id"`
	TotalSeats  int        `gorm:"not null" json:"total_seats"`
	TotalPrice  float64    `gorm:"not null" json:"total_price"`
	Status      string     `gorm:"type:varchar(20);check:status IN ('PENDING', 'CONFIRMED', 'CANCELLED');default:'PENDING'" json:"status"`
	BookingRef  string     `gorm:"unique;not null" json:"booking_ref"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	Seats []BookingSeat `json:"seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// BookingSeat pins one seat of a trip to a booking. The unique index on
// (trip_id, seat_id) is the arbitration point: two checkouts racing for
// the same seat cannot both insert. Cancellation deletes these rows so
// the seats free up while the booking record survives as CANCELLED.
type BookingSeat struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_seat" json:"trip_id"`
	SeatID    uint      `gorm:"not null;uniqueIndex:idx_trip_seat" json:"seat_id"`
	SeatName  string    `gorm:"not null" json:"seat_name"`
	SeatPrice float64   `gorm:"not null" json:"seat_price"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for BookingSeat
func (BookingSeat) TableName() string {
	return "booking_seats"
}

// Request/response models for the booking flow

type CreateBookingRequest struct {
	TripID  string `json:"trip_id" binding:"required,uuid"`
	SeatIDs []int  `json:"seat_ids" binding:"required,min=1,max=10"`
}

type BookingResponse struct {
	BookingID  string             `json:"booking_id"`
	BookingRef string             `json:"booking_ref"`
	TripID     string             `json:"trip_id"`
	Status     string             `json:"status"`
	TotalSeats int                `json:"total_seats"`
	TotalPrice float64            `json:"total_price"`
	PriceVND   string             `json:"price_vnd"`
	Seats      []BookedSeatInfo   `json:"seats"`
	CreatedAt  time.Time          `json:"created_at"`
}

type BookedSeatInfo struct {
	SeatID   int     `json:"seat_id"`
	SeatName string  `json:"seat_name"`
	Price    float64 `json:"price"`
}
