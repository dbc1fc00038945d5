package trips

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"coachbooking/internal/seatmap"
	"coachbooking/internal/vehicles"
)

type fakeRepo struct {
	Repository
	trip *Trip
}

func (f *fakeRepo) GetTripByID(context.Context, uuid.UUID) (*Trip, error) {
	return f.trip, nil
}

type fakeSeatSource struct {
	seats []vehicles.VehicleSeat
}

func (f *fakeSeatSource) GetVehicleSeats(context.Context, string) ([]vehicles.VehicleSeat, error) {
	return f.seats, nil
}

type fakeStates struct {
	states map[uint]seatmap.SeatStatus
}

func (f *fakeStates) SeatStates(context.Context, uuid.UUID) (map[uint]seatmap.SeatStatus, error) {
	return f.states, nil
}

func limousineTrip() *Trip {
	return &Trip{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		Status:    TripStatusScheduled,
		BasePrice: 150000,
		Vehicle: &vehicles.Vehicle{
			Type:      "LIMOUSINE",
			SeatCount: 9,
		},
	}
}

func limousineSeats(vehicleID uuid.UUID) []vehicles.VehicleSeat {
	layout, _ := seatmap.LayoutFor("LIMOUSINE")
	names := layout.SeatNames()
	seats := make([]vehicles.VehicleSeat, len(names))
	for i, name := range names {
		seats[i] = vehicles.VehicleSeat{
			ID:        uint(i + 1),
			VehicleID: vehicleID,
			Ordinal:   i,
			Name:      name,
			Floor:     1,
		}
	}
	return seats
}

func TestGetSeatRosterStates(t *testing.T) {
	trip := limousineTrip()
	svc := NewService(&fakeRepo{trip: trip}, &fakeSeatSource{seats: limousineSeats(trip.VehicleID)}, nil)
	svc.SetSeatStatusSource(&fakeStates{states: map[uint]seatmap.SeatStatus{
		2: seatmap.StatusHold,
		5: seatmap.StatusSold,
	}})

	roster, err := svc.GetSeatRoster(context.Background(), trip.ID.String())
	if err != nil {
		t.Fatalf("GetSeatRoster: %v", err)
	}

	if len(roster.Seats) != 9 {
		t.Fatalf("seat count = %d, want 9", len(roster.Seats))
	}

	byID := make(map[int]seatmap.Seat)
	for _, seat := range roster.Seats {
		byID[seat.ID] = seat
	}
	if byID[2].Status != seatmap.StatusHold {
		t.Errorf("seat 2 = %s, want HOLD", byID[2].Status)
	}
	if byID[5].Status != seatmap.StatusSold {
		t.Errorf("seat 5 = %s, want SOLD", byID[5].Status)
	}
	if byID[1].Status != seatmap.StatusAvailable {
		t.Errorf("seat 1 = %s, want AVAILABLE", byID[1].Status)
	}

	// Every non-available seat must be listed as disabled
	disabled := make(map[int]bool)
	for _, id := range roster.DisabledSeats {
		disabled[id] = true
	}
	if !disabled[2] || !disabled[5] || len(disabled) != 2 {
		t.Errorf("disabled seats = %v, want [2 5]", roster.DisabledSeats)
	}
}

func TestGetSeatRosterWithoutStatusSource(t *testing.T) {
	trip := limousineTrip()
	svc := NewService(&fakeRepo{trip: trip}, &fakeSeatSource{seats: limousineSeats(trip.VehicleID)}, nil)

	roster, err := svc.GetSeatRoster(context.Background(), trip.ID.String())
	if err != nil {
		t.Fatalf("GetSeatRoster: %v", err)
	}
	for _, seat := range roster.Seats {
		if seat.Status != seatmap.StatusAvailable {
			t.Errorf("seat %d = %s, want AVAILABLE when no bookings exist", seat.ID, seat.Status)
		}
	}
	if len(roster.DisabledSeats) != 0 {
		t.Errorf("disabled seats = %v, want none", roster.DisabledSeats)
	}
}

func TestGetSeatRosterGrid(t *testing.T) {
	trip := limousineTrip()
	svc := NewService(&fakeRepo{trip: trip}, &fakeSeatSource{seats: limousineSeats(trip.VehicleID)}, nil)

	roster, err := svc.GetSeatRoster(context.Background(), trip.ID.String())
	if err != nil {
		t.Fatal(err)
	}

	if len(roster.Floors) != 1 {
		t.Fatalf("floor count = %d, want 1", len(roster.Floors))
	}
	rows := roster.Floors[0].Rows
	if len(rows) != 4 {
		t.Fatalf("row count = %d, want 4", len(rows))
	}
	// First three rows are pairs across an aisle, last row seats three
	for i := 0; i < 3; i++ {
		if !rows[i][1].Aisle {
			t.Errorf("row %d middle cell should be the aisle", i)
		}
	}
	for _, cell := range rows[3] {
		if cell.Seat == nil {
			t.Error("back row cells should all hold seats")
		}
	}
}

func TestGetSeatRosterUnknownLayout(t *testing.T) {
	trip := limousineTrip()
	trip.Vehicle.Type = "MINIBUS"
	svc := NewService(&fakeRepo{trip: trip}, &fakeSeatSource{}, nil)

	if _, err := svc.GetSeatRoster(context.Background(), trip.ID.String()); err == nil {
		t.Fatal("expected an error for a vehicle type without a layout")
	}
}

func TestTripUnitPriceFallback(t *testing.T) {
	trip := &Trip{BasePrice: 150000}
	if got := trip.UnitPrice(); got != 150000 {
		t.Errorf("unit price without price record = %v, want base price", got)
	}

	trip.Price = &TripPrice{PriceTrip: 250000}
	if got := trip.UnitPrice(); got != 250000 {
		t.Errorf("unit price with price record = %v, want 250000", got)
	}

	neither := &Trip{}
	if got := neither.UnitPrice(); got != 0 {
		t.Errorf("unit price with no prices = %v, want 0", got)
	}
}

func TestRosterUnitPriceRendered(t *testing.T) {
	trip := limousineTrip()
	trip.Price = &TripPrice{PriceTrip: 350000}
	svc := NewService(&fakeRepo{trip: trip}, &fakeSeatSource{seats: limousineSeats(trip.VehicleID)}, nil)

	roster, err := svc.GetSeatRoster(context.Background(), trip.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if roster.UnitPrice != 350000 {
		t.Errorf("unit price = %v, want 350000", roster.UnitPrice)
	}
	if roster.UnitPriceVND != "350.000đ" {
		t.Errorf("unit price vnd = %q, want 350.000đ", roster.UnitPriceVND)
	}
}
