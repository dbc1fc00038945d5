package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachbooking/internal/pricing"
	"coachbooking/internal/seatmap"
	"coachbooking/internal/trips"
	"coachbooking/pkg/logger"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotBookingOwner   = errors.New("booking belongs to another user")
	ErrSeatNotOnVehicle  = errors.New("seat does not exist on this vehicle")
	ErrSeatNotAvailable  = errors.New("seat is not available")
	ErrInvalidTransition = errors.New("booking is not in a state that allows this action")
	ErrTripNotBookable   = errors.New("trip is not open for booking")
)

// Notifier delivers booking lifecycle emails. Implemented by the
// notifications service; failures are logged, never surfaced to the
// customer.
type Notifier interface {
	SendBookingNotification(ctx context.Context, userID uuid.UUID, email string, event string, data map[string]interface{}) error
}

type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, email string, req CreateBookingRequest) (*BookingResponse, error)
	ConfirmBooking(ctx context.Context, userID uuid.UUID, email string, bookingID string) (*BookingResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, email string, bookingID string) (*BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error)

	// SeatStates implements the seat status lookup the trip roster
	// needs: seat id -> HOLD/SOLD for every booked seat of the trip.
	SeatStates(ctx context.Context, tripID uuid.UUID) (map[uint]seatmap.SeatStatus, error)
}

type service struct {
	repo     Repository
	trips    trips.Service
	notifier Notifier
	logger   *logger.Logger
}

func NewService(repo Repository, tripService trips.Service, notifier Notifier, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		trips:    tripService,
		notifier: notifier,
		logger:   log,
	}
}

// CreateBooking validates the requested seats against the live roster,
// prices them, and writes the booking as PENDING. The roster check is
// advisory; the unique (trip_id, seat_id) index is what actually
// serializes concurrent checkouts.
func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, email string, req CreateBookingRequest) (*BookingResponse, error) {
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, trips.ErrTripNotFound
	}

	trip, err := s.trips.GetTripByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != trips.TripStatusScheduled {
		return nil, ErrTripNotBookable
	}

	roster, err := s.trips.GetSeatRoster(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]seatmap.Seat, len(roster.Seats))
	for _, seat := range roster.Seats {
		byID[seat.ID] = seat
	}

	unit := trip.UnitPrice()
	seats := make([]BookingSeat, 0, len(req.SeatIDs))
	seen := make(map[int]bool, len(req.SeatIDs))
	for _, id := range req.SeatIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		seat, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: seat %d", ErrSeatNotOnVehicle, id)
		}
		if !seat.Selectable() {
			return nil, fmt.Errorf("%w: %s", ErrSeatNotAvailable, seat.Name)
		}
		seats = append(seats, BookingSeat{
			TripID:    tripID,
			SeatID:    uint(id),
			SeatName:  seat.Name,
			SeatPrice: unit,
		})
	}

	booking := &Booking{
		UserID:     userID,
		TripID:     tripID,
		TotalSeats: len(seats),
		TotalPrice: pricing.Total(unit, len(seats)),
		Status:     StatusPending,
		BookingRef: newBookingRef(),
	}

	if err := s.repo.CreateBookingWithSeats(ctx, booking, seats); err != nil {
		if errors.Is(err, ErrSeatTaken) {
			return nil, ErrSeatNotAvailable
		}
		s.logger.WithError(err).Error("failed to create booking", "trip_id", req.TripID)
		return nil, err
	}
	booking.Seats = seats

	s.trips.InvalidateTripCaches(ctx, tripID)
	s.logger.Info("booking created",
		"booking_ref", booking.BookingRef,
		"trip_id", req.TripID,
		"seats", len(seats))

	return s.toResponse(booking), nil
}

func (s *service) ConfirmBooking(ctx context.Context, userID uuid.UUID, email string, bookingID string) (*BookingResponse, error) {
	booking, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateBookingStatus(ctx, booking.ID, StatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = StatusConfirmed

	s.trips.InvalidateTripCaches(ctx, booking.TripID)
	s.notify(ctx, userID, email, "BOOKING_CONFIRMED", booking)

	return s.toResponse(booking), nil
}

func (s *service) CancelBooking(ctx context.Context, userID uuid.UUID, email string, bookingID string) (*BookingResponse, error) {
	booking, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == StatusCancelled {
		return nil, ErrInvalidTransition
	}

	// Deleting the seat rows is what releases the seats back to the
	// map; the delete and the status flip commit together so a failure
	// leaves the booking cancellable again.
	if err := s.repo.CancelBookingWithSeats(ctx, booking.ID); err != nil {
		s.logger.WithError(err).Error("failed to cancel booking", "booking_ref", booking.BookingRef)
		return nil, err
	}
	booking.Status = StatusCancelled

	s.trips.InvalidateTripCaches(ctx, booking.TripID)
	s.notify(ctx, userID, email, "BOOKING_CANCELLED", booking)

	return s.toResponse(booking), nil
}

func (s *service) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*BookingResponse, error) {
	booking, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(booking), nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error) {
	bookings, err := s.repo.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *s.toResponse(&bookings[i]))
	}
	return responses, nil
}

func (s *service) SeatStates(ctx context.Context, tripID uuid.UUID) (map[uint]seatmap.SeatStatus, error) {
	raw, err := s.repo.SeatStatesByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	states := make(map[uint]seatmap.SeatStatus, len(raw))
	for seatID, status := range raw {
		switch status {
		case StatusPending:
			states[seatID] = seatmap.StatusHold
		case StatusConfirmed:
			states[seatID] = seatmap.StatusSold
		}
	}
	return states, nil
}

// ownedBooking resolves a booking by UUID or by the CB- reference from
// the confirmation email, and checks it belongs to the caller.
func (s *service) ownedBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*Booking, error) {
	var (
		booking *Booking
		err     error
	)
	if id, parseErr := uuid.Parse(bookingID); parseErr == nil {
		booking, err = s.repo.GetBookingByID(ctx, id)
	} else if strings.HasPrefix(bookingID, "CB-") {
		booking, err = s.repo.GetBookingByRef(ctx, bookingID)
	} else {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return booking, nil
}

func (s *service) notify(ctx context.Context, userID uuid.UUID, email, event string, booking *Booking) {
	if s.notifier == nil || email == "" {
		return
	}
	seatNames := make([]string, 0, len(booking.Seats))
	for _, seat := range booking.Seats {
		seatNames = append(seatNames, seat.SeatName)
	}
	err := s.notifier.SendBookingNotification(ctx, userID, email, event, map[string]interface{}{
		"booking_ref": booking.BookingRef,
		"trip_id":     booking.TripID.String(),
		"seats":       strings.Join(seatNames, ", "),
		"total_price": pricing.FormatVND(booking.TotalPrice),
	})
	if err != nil {
		s.logger.WithError(err).Warn("failed to queue booking notification",
			"booking_ref", booking.BookingRef, "event", event)
	}
}

func (s *service) toResponse(booking *Booking) *BookingResponse {
	seats := make([]BookedSeatInfo, 0, len(booking.Seats))
	for _, seat := range booking.Seats {
		seats = append(seats, BookedSeatInfo{
			SeatID:   int(seat.SeatID),
			SeatName: seat.SeatName,
			Price:    seat.SeatPrice,
		})
	}
	return &BookingResponse{
		BookingID:  booking.ID.String(),
		BookingRef: booking.BookingRef,
		TripID:     booking.TripID.String(),
		Status:     booking.Status,
		TotalSeats: booking.TotalSeats,
		TotalPrice: booking.TotalPrice,
		PriceVND:   pricing.FormatVND(booking.TotalPrice),
		Seats:      seats,
		CreatedAt:  booking.CreatedAt,
	}
}

// newBookingRef returns a short human-readable reference like CB-4F9A21C3.
func newBookingRef() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "CB-" + strings.ToUpper(raw[:8])
}
