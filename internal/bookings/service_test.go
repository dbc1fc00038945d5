package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"coachbooking/internal/seatmap"
	"coachbooking/internal/trips"
	"coachbooking/pkg/logger"
)

// fakeRepository is an in-memory Repository for service tests
type fakeRepository struct {
	bookings  map[uuid.UUID]*Booking
	takenErr  bool
	cancelErr error
	seatRows  []BookingSeat
	released  []uuid.UUID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[uuid.UUID]*Booking)}
}

func (f *fakeRepository) CreateBookingWithSeats(_ context.Context, booking *Booking, seats []BookingSeat) error {
	if f.takenErr {
		return ErrSeatTaken
	}
	booking.ID = uuid.New()
	for i := range seats {
		seats[i].BookingID = booking.ID
	}
	f.seatRows = append(f.seatRows, seats...)
	stored := *booking
	stored.Seats = seats
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeRepository) GetBookingByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepository) GetBookingByRef(_ context.Context, ref string) (*Booking, error) {
	for _, b := range f.bookings {
		if b.BookingRef == ref {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (f *fakeRepository) GetUserBookings(_ context.Context, userID uuid.UUID) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateBookingStatus(_ context.Context, id uuid.UUID, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	return nil
}

// CancelBookingWithSeats mirrors the real repository's all-or-nothing
// transaction: on error nothing changes.
func (f *fakeRepository) CancelBookingWithSeats(_ context.Context, bookingID uuid.UUID) error {
	if f.cancelErr != nil {
		err := f.cancelErr
		f.cancelErr = nil
		return err
	}
	b, ok := f.bookings[bookingID]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = StatusCancelled
	f.released = append(f.released, bookingID)
	kept := f.seatRows[:0]
	for _, row := range f.seatRows {
		if row.BookingID != bookingID {
			kept = append(kept, row)
		}
	}
	f.seatRows = kept
	return nil
}

func (f *fakeRepository) SeatStatesByTrip(_ context.Context, tripID uuid.UUID) (map[uint]string, error) {
	states := make(map[uint]string)
	for _, row := range f.seatRows {
		if row.TripID != tripID {
			continue
		}
		if b, ok := f.bookings[row.BookingID]; ok && b.Status != StatusCancelled {
			states[row.SeatID] = b.Status
		}
	}
	return states, nil
}

// fakeTripService serves a single trip with a fixed roster
type fakeTripService struct {
	trips.Service
	trip        *trips.Trip
	roster      *trips.SeatRosterResponse
	invalidated int
}

func (f *fakeTripService) GetTripByID(context.Context, string) (*trips.Trip, error) {
	if f.trip == nil {
		return nil, trips.ErrTripNotFound
	}
	return f.trip, nil
}

func (f *fakeTripService) GetSeatRoster(context.Context, string) (*trips.SeatRosterResponse, error) {
	return f.roster, nil
}

func (f *fakeTripService) InvalidateTripCaches(context.Context, uuid.UUID) {
	f.invalidated++
}

type fakeNotifier struct {
	events []string
	emails []string
}

func (f *fakeNotifier) SendBookingNotification(_ context.Context, _ uuid.UUID, email, event string, _ map[string]interface{}) error {
	f.events = append(f.events, event)
	f.emails = append(f.emails, email)
	return nil
}

func newTestService(repo Repository, tripSvc trips.Service, notifier Notifier) Service {
	return NewService(repo, tripSvc, notifier, logger.GetDefault())
}

func testRoster(tripID string) (*trips.Trip, *trips.SeatRosterResponse) {
	trip := &trips.Trip{
		ID:        uuid.MustParse(tripID),
		Status:    trips.TripStatusScheduled,
		BasePrice: 150000,
	}
	roster := &trips.SeatRosterResponse{
		TripID: tripID,
		Seats: []seatmap.Seat{
			{ID: 1, Name: "S01", Floor: 1, Status: seatmap.StatusAvailable},
			{ID: 2, Name: "S02", Floor: 1, Status: seatmap.StatusAvailable},
			{ID: 3, Name: "S03", Floor: 1, Status: seatmap.StatusHold},
			{ID: 4, Name: "S04", Floor: 1, Status: seatmap.StatusSold},
		},
	}
	return trip, roster
}

const testTripID = "b7f6f842-3c1d-4a4e-9a65-0a4c5b2d8f11"

func TestCreateBooking(t *testing.T) {
	trip, roster := testRoster(testTripID)
	tripSvc := &fakeTripService{trip: trip, roster: roster}
	repo := newFakeRepository()
	svc := newTestService(repo, tripSvc, nil)
	userID := uuid.New()

	resp, err := svc.CreateBooking(context.Background(), userID, "minh@example.com", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1, 2},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if resp.Status != StatusPending {
		t.Errorf("status = %s, want PENDING", resp.Status)
	}
	if resp.TotalSeats != 2 {
		t.Errorf("total seats = %d, want 2", resp.TotalSeats)
	}
	if resp.TotalPrice != 300000 {
		t.Errorf("total price = %v, want 300000 (2 x base price)", resp.TotalPrice)
	}
	if !strings.HasPrefix(resp.BookingRef, "CB-") {
		t.Errorf("booking ref = %q, want CB- prefix", resp.BookingRef)
	}
	if resp.PriceVND != "300.000đ" {
		t.Errorf("price vnd = %q, want 300.000đ", resp.PriceVND)
	}
	if tripSvc.invalidated != 1 {
		t.Error("creating a booking should invalidate the trip caches")
	}
}

func TestCreateBookingDedupesSeatIDs(t *testing.T) {
	trip, roster := testRoster(testTripID)
	svc := newTestService(newFakeRepository(), &fakeTripService{trip: trip, roster: roster}, nil)

	resp, err := svc.CreateBooking(context.Background(), uuid.New(), "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if resp.TotalSeats != 1 {
		t.Errorf("total seats = %d, want 1 after dedup", resp.TotalSeats)
	}
}

func TestCreateBookingRejectsTakenSeats(t *testing.T) {
	trip, roster := testRoster(testTripID)
	svc := newTestService(newFakeRepository(), &fakeTripService{trip: trip, roster: roster}, nil)

	for _, seatID := range []int{3, 4} { // HOLD and SOLD
		_, err := svc.CreateBooking(context.Background(), uuid.New(), "", CreateBookingRequest{
			TripID:  testTripID,
			SeatIDs: []int{seatID},
		})
		if !errors.Is(err, ErrSeatNotAvailable) {
			t.Errorf("seat %d: err = %v, want ErrSeatNotAvailable", seatID, err)
		}
	}
}

func TestCreateBookingRejectsUnknownSeat(t *testing.T) {
	trip, roster := testRoster(testTripID)
	svc := newTestService(newFakeRepository(), &fakeTripService{trip: trip, roster: roster}, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{99},
	})
	if !errors.Is(err, ErrSeatNotOnVehicle) {
		t.Errorf("err = %v, want ErrSeatNotOnVehicle", err)
	}
}

func TestCreateBookingLostRace(t *testing.T) {
	trip, roster := testRoster(testTripID)
	repo := newFakeRepository()
	repo.takenErr = true
	svc := newTestService(repo, &fakeTripService{trip: trip, roster: roster}, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1},
	})
	if !errors.Is(err, ErrSeatNotAvailable) {
		t.Errorf("err = %v, want ErrSeatNotAvailable when the insert loses the race", err)
	}
}

func TestCreateBookingRejectsNonScheduledTrip(t *testing.T) {
	trip, roster := testRoster(testTripID)
	trip.Status = trips.TripStatusDeparted
	svc := newTestService(newFakeRepository(), &fakeTripService{trip: trip, roster: roster}, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1},
	})
	if !errors.Is(err, ErrTripNotBookable) {
		t.Errorf("err = %v, want ErrTripNotBookable", err)
	}
}

func TestConfirmBooking(t *testing.T) {
	trip, roster := testRoster(testTripID)
	repo := newFakeRepository()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, &fakeTripService{trip: trip, roster: roster}, notifier)
	userID := uuid.New()

	created, err := svc.CreateBooking(context.Background(), userID, "minh@example.com", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1},
	})
	if err != nil {
		t.Fatal(err)
	}

	confirmed, err := svc.ConfirmBooking(context.Background(), userID, "minh@example.com", created.BookingID)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Errorf("status = %s, want CONFIRMED", confirmed.Status)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "BOOKING_CONFIRMED" {
		t.Errorf("notifications = %v, want [BOOKING_CONFIRMED]", notifier.events)
	}

	// Confirming twice is not a valid transition
	if _, err := svc.ConfirmBooking(context.Background(), userID, "minh@example.com", created.BookingID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second confirm err = %v, want ErrInvalidTransition", err)
	}
}

func TestConfirmBookingOwnership(t *testing.T) {
	trip, roster := testRoster(testTripID)
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeTripService{trip: trip, roster: roster}, nil)

	created, err := svc.CreateBooking(context.Background(), uuid.New(), "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.ConfirmBooking(context.Background(), uuid.New(), "", created.BookingID)
	if !errors.Is(err, ErrNotBookingOwner) {
		t.Errorf("err = %v, want ErrNotBookingOwner", err)
	}
}

func TestCancelBookingReleasesSeats(t *testing.T) {
	trip, roster := testRoster(testTripID)
	repo := newFakeRepository()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, &fakeTripService{trip: trip, roster: roster}, notifier)
	userID := uuid.New()

	created, err := svc.CreateBooking(context.Background(), userID, "lan@example.com", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1, 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	cancelled, err := svc.CancelBooking(context.Background(), userID, "lan@example.com", created.BookingID)
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("status = %s, want CANCELLED", cancelled.Status)
	}
	if len(repo.released) != 1 {
		t.Error("cancelling should release the booking's seats")
	}
	if len(notifier.events) != 1 || notifier.events[0] != "BOOKING_CANCELLED" {
		t.Errorf("notifications = %v, want [BOOKING_CANCELLED]", notifier.events)
	}

	// A cancelled booking cannot be cancelled again
	if _, err := svc.CancelBooking(context.Background(), userID, "lan@example.com", created.BookingID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second cancel err = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelBookingFailureIsRetryable(t *testing.T) {
	trip, roster := testRoster(testTripID)
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeTripService{trip: trip, roster: roster}, nil)
	userID := uuid.New()

	created, err := svc.CreateBooking(context.Background(), userID, "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1},
	})
	if err != nil {
		t.Fatal(err)
	}

	// A cancellation that fails mid-way must leave the booking and its
	// seat rows untouched, not half-cancelled.
	repo.cancelErr = errors.New("connection reset")
	if _, err := svc.CancelBooking(context.Background(), userID, "", created.BookingID); err == nil {
		t.Fatal("expected the failed cancellation to surface an error")
	}

	tripID := uuid.MustParse(testTripID)
	states, _ := svc.SeatStates(context.Background(), tripID)
	if states[1] != seatmap.StatusHold {
		t.Errorf("seat state after failed cancel = %s, want HOLD (seat still attached)", states[1])
	}

	// Retrying the cancel releases the seat
	cancelled, err := svc.CancelBooking(context.Background(), userID, "", created.BookingID)
	if err != nil {
		t.Fatalf("retry cancel: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("status = %s, want CANCELLED", cancelled.Status)
	}
	states, _ = svc.SeatStates(context.Background(), tripID)
	if _, ok := states[1]; ok {
		t.Error("seat should be released after the successful retry")
	}
	if len(repo.seatRows) != 0 {
		t.Errorf("seat rows still pinned after cancel: %d", len(repo.seatRows))
	}
}

func TestSeatStatesMapping(t *testing.T) {
	trip, roster := testRoster(testTripID)
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeTripService{trip: trip, roster: roster}, nil)
	userID := uuid.New()
	tripID := uuid.MustParse(testTripID)

	pending, err := svc.CreateBooking(context.Background(), userID, "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1},
	})
	if err != nil {
		t.Fatal(err)
	}
	confirmedBooking, err := svc.CreateBooking(context.Background(), userID, "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ConfirmBooking(context.Background(), userID, "", confirmedBooking.BookingID); err != nil {
		t.Fatal(err)
	}

	states, err := svc.SeatStates(context.Background(), tripID)
	if err != nil {
		t.Fatalf("SeatStates: %v", err)
	}
	if states[1] != seatmap.StatusHold {
		t.Errorf("pending booking seat state = %s, want HOLD", states[1])
	}
	if states[2] != seatmap.StatusSold {
		t.Errorf("confirmed booking seat state = %s, want SOLD", states[2])
	}

	// Cancel the pending one: its seat leaves the map entirely
	if _, err := svc.CancelBooking(context.Background(), userID, "", pending.BookingID); err != nil {
		t.Fatal(err)
	}
	states, _ = svc.SeatStates(context.Background(), tripID)
	if _, ok := states[1]; ok {
		t.Error("cancelled booking seats must not appear in seat states")
	}
}

func TestGetBookingByReference(t *testing.T) {
	trip, roster := testRoster(testTripID)
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeTripService{trip: trip, roster: roster}, nil)
	userID := uuid.New()

	created, err := svc.CreateBooking(context.Background(), userID, "", CreateBookingRequest{
		TripID:  testTripID,
		SeatIDs: []int{1},
	})
	if err != nil {
		t.Fatal(err)
	}

	// The CB- reference from the confirmation email works in place of
	// the booking id.
	byRef, err := svc.GetBooking(context.Background(), userID, created.BookingRef)
	if err != nil {
		t.Fatalf("GetBooking by ref: %v", err)
	}
	if byRef.BookingID != created.BookingID {
		t.Error("ref lookup should resolve the same booking")
	}

	if _, err := svc.GetBooking(context.Background(), userID, "CB-NOPE1234"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("unknown ref err = %v, want ErrBookingNotFound", err)
	}
	if _, err := svc.GetBooking(context.Background(), userID, "not-a-uuid"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("garbage id err = %v, want ErrBookingNotFound", err)
	}
}
