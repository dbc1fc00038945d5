package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSeatTaken = errors.New("one or more seats are already taken")

type Repository interface {
	CreateBookingWithSeats(ctx context.Context, booking *Booking, seats []BookingSeat) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetBookingByRef(ctx context.Context, ref string) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) error
	CancelBookingWithSeats(ctx context.Context, bookingID uuid.UUID) error
	SeatStatesByTrip(ctx context.Context, tripID uuid.UUID) (map[uint]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBookingWithSeats inserts the booking and its seat rows in one
// transaction. A duplicate on (trip_id, seat_id) means someone else got
// there first; the whole transaction rolls back and ErrSeatTaken is
// returned so the caller can re-read the roster.
func (r *repository) CreateBookingWithSeats(ctx context.Context, booking *Booking, seats []BookingSeat) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		for i := range seats {
			seats[i].BookingID = booking.ID
		}
		if err := tx.Create(&seats).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil && isUniqueViolation(err) {
		return ErrSeatTaken
	}
	return err
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Seats").First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetBookingByRef(ctx context.Context, ref string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Seats").First(&booking, "booking_ref = ?", ref).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) error {
	updates := map[string]interface{}{"status": status}
	if status == StatusCancelled {
		now := time.Now()
		updates["cancelled_at"] = &now
	}
	return r.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Updates(updates).Error
}

// CancelBookingWithSeats flips the booking to CANCELLED and deletes its
// seat rows in one transaction, so a failed cancellation leaves the
// booking untouched instead of stranding seats on a cancelled booking.
func (r *repository) CancelBookingWithSeats(ctx context.Context, bookingID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		err := tx.Model(&Booking{}).Where("id = ?", bookingID).Updates(map[string]interface{}{
			"status":       StatusCancelled,
			"cancelled_at": &now,
		}).Error
		if err != nil {
			return err
		}
		return tx.Where("booking_id = ?", bookingID).Delete(&BookingSeat{}).Error
	})
}

// SeatStatesByTrip returns seat_id -> booking status for every seat of
// the trip currently attached to a non-cancelled booking.
func (r *repository) SeatStatesByTrip(ctx context.Context, tripID uuid.UUID) (map[uint]string, error) {
	type row struct {
		SeatID uint
		Status string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("booking_seats").
		Select("booking_seats.seat_id, bookings.status").
		Joins("JOIN bookings ON bookings.id = booking_seats.booking_id").
		Where("booking_seats.trip_id = ? AND bookings.status IN ?", tripID, []string{StatusPending, StatusConfirmed}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	states := make(map[uint]string, len(rows))
	for _, r := range rows {
		states[r.SeatID] = r.Status
	}
	return states, nil
}

func isUniqueViolation(err error) bool {
	// Postgres unique_violation is SQLSTATE 23505; gorm surfaces it as
	// ErrDuplicatedKey on newer driver versions, older ones only in the
	// message text.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "duplicate key")
}
