package trips

import (
	"context"
	"errors"
	"fmt"

	"coachbooking/internal/seatmap"
	"coachbooking/internal/shared/constants"
	"coachbooking/internal/vehicles"
	"coachbooking/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrPriceNotFound = errors.New("price record not found")
	ErrNoLayout      = errors.New("no seat layout for vehicle type")
)

// VehicleSeatSource supplies a vehicle's physical seat roster.
// Implemented by the vehicles service.
type VehicleSeatSource interface {
	GetVehicleSeats(ctx context.Context, id string) ([]vehicles.VehicleSeat, error)
}

// SeatStatusSource reports the booking-derived state of a trip's seats:
// seats on a pending booking are HOLD, on a confirmed booking SOLD.
// Implemented by the bookings service; trips only knows the contract.
type SeatStatusSource interface {
	SeatStates(ctx context.Context, tripID uuid.UUID) (map[uint]seatmap.SeatStatus, error)
}

type Service interface {
	// Customer-facing
	SearchTrips(ctx context.Context, req SearchTripsRequest) ([]Trip, error)
	GetTripByID(ctx context.Context, id string) (*Trip, error)
	GetSeatRoster(ctx context.Context, tripID string) (*SeatRosterResponse, error)

	// Admin
	CreateTrip(ctx context.Context, req CreateTripRequest) (*Trip, error)
	UpdateTrip(ctx context.Context, id string, req UpdateTripRequest) (*Trip, error)
	DeleteTrip(ctx context.Context, id string) error

	CreatePrice(ctx context.Context, req CreateTripPriceRequest) (*TripPrice, error)
	GetPrices(ctx context.Context) ([]TripPrice, error)
	UpdatePrice(ctx context.Context, id string, req UpdateTripPriceRequest) (*TripPrice, error)
	DeletePrice(ctx context.Context, id string) error

	// Cache invalidation hook for the bookings flow
	InvalidateTripCaches(ctx context.Context, tripID uuid.UUID)

	// SetSeatStatusSource wires the bookings service in after
	// construction; bookings depends on trips, so the reverse edge is
	// injected late.
	SetSeatStatusSource(src SeatStatusSource)
}

type service struct {
	repo       Repository
	seatSource VehicleSeatSource
	states     SeatStatusSource
	cache      cache.Service
}

func NewService(repo Repository, seatSource VehicleSeatSource, cacheService cache.Service) Service {
	return &service{
		repo:       repo,
		seatSource: seatSource,
		cache:      cacheService,
	}
}

func (s *service) SetSeatStatusSource(src SeatStatusSource) {
	s.states = src
}

func (s *service) SearchTrips(ctx context.Context, req SearchTripsRequest) ([]Trip, error) {
	var trips []Trip
	if s.cache != nil {
		key := constants.TripSearchKey(req.From, req.To, req.Date)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_DYNAMIC_SHORT,
			func() (interface{}, error) { return s.repo.SearchTrips(ctx, req.From, req.To, req.Date) }, &trips)
		if err == nil {
			return trips, nil
		}
	}
	return s.repo.SearchTrips(ctx, req.From, req.To, req.Date)
}

func (s *service) GetTripByID(ctx context.Context, id string) (*Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTripNotFound
	}
	trip, err := s.repo.GetTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// GetSeatRoster assembles the seat-selection payload for one trip: the
// vehicle's seats in canonical order with booking-derived statuses, the
// layout grid, the unit price and the disabled-seat list.
func (s *service) GetSeatRoster(ctx context.Context, tripID string) (*SeatRosterResponse, error) {
	trip, err := s.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Vehicle == nil {
		return nil, fmt.Errorf("trip %s has no vehicle", tripID)
	}

	layout, ok := seatmap.LayoutFor(trip.Vehicle.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoLayout, trip.Vehicle.Type)
	}

	if s.cache != nil {
		var cached SeatRosterResponse
		key := constants.TripRosterKey(tripID)
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	vehicleSeats, err := s.seatSource.GetVehicleSeats(ctx, trip.VehicleID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle seats: %w", err)
	}

	states := map[uint]seatmap.SeatStatus{}
	if s.states != nil {
		states, err = s.states.SeatStates(ctx, trip.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load seat states: %w", err)
		}
	}

	seats := make([]seatmap.Seat, 0, len(vehicleSeats))
	for _, vs := range vehicleSeats {
		status := seatmap.StatusAvailable
		if st, ok := states[vs.ID]; ok {
			status = st
		}
		seats = append(seats, seatmap.Seat{
			ID:     int(vs.ID),
			Name:   vs.Name,
			Floor:  vs.Floor,
			Status: status,
		})
	}

	resp := newRosterResponse(trip, layout, seats)

	if s.cache != nil {
		_ = s.cache.Set(ctx, constants.TripRosterKey(tripID), resp, constants.TTL_DYNAMIC_QUICK)
	}
	return resp, nil
}

func (s *service) CreateTrip(ctx context.Context, req CreateTripRequest) (*Trip, error) {
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route id: %w", err)
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle id: %w", err)
	}

	trip := &Trip{
		RouteID:   routeID,
		VehicleID: vehicleID,
		StartDate: req.StartDate,
		StartTime: req.StartTime,
		TotalTime: req.TotalTime,
		Status:    TripStatusScheduled,
	}
	if v, ok := req.BasePrice.Float64(); ok {
		trip.BasePrice = v
	}
	if req.DriverID != "" {
		driverID, err := uuid.Parse(req.DriverID)
		if err != nil {
			return nil, fmt.Errorf("invalid driver id: %w", err)
		}
		trip.DriverID = &driverID
	}
	if req.PriceID != "" {
		priceID, err := uuid.Parse(req.PriceID)
		if err != nil {
			return nil, fmt.Errorf("invalid price id: %w", err)
		}
		if _, err := s.repo.GetPriceByID(ctx, priceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPriceNotFound
			}
			return nil, err
		}
		trip.PriceID = &priceID
	}

	if err := s.repo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	s.InvalidateTripCaches(ctx, trip.ID)

	return s.repo.GetTripByID(ctx, trip.ID)
}

func (s *service) UpdateTrip(ctx context.Context, id string, req UpdateTripRequest) (*Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTripNotFound
	}

	updates := map[string]interface{}{}
	if req.DriverID != nil {
		driverID, err := uuid.Parse(*req.DriverID)
		if err != nil {
			return nil, fmt.Errorf("invalid driver id: %w", err)
		}
		updates["driver_id"] = driverID
	}
	if req.PriceID != nil {
		priceID, err := uuid.Parse(*req.PriceID)
		if err != nil {
			return nil, fmt.Errorf("invalid price id: %w", err)
		}
		updates["price_id"] = priceID
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.BasePrice != nil {
		if v, ok := req.BasePrice.Float64(); ok {
			updates["base_price"] = v
		}
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateTrip(ctx, tripID, updates); err != nil {
			return nil, fmt.Errorf("failed to update trip: %w", err)
		}
	}
	s.InvalidateTripCaches(ctx, tripID)

	return s.GetTripByID(ctx, id)
}

func (s *service) DeleteTrip(ctx context.Context, id string) error {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return ErrTripNotFound
	}
	if err := s.repo.DeleteTrip(ctx, tripID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	s.InvalidateTripCaches(ctx, tripID)
	return nil
}

func (s *service) CreatePrice(ctx context.Context, req CreateTripPriceRequest) (*TripPrice, error) {
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route id: %w", err)
	}
	vehicleType, ok := seatmap.ParseVehicleType(req.VehicleType)
	if !ok {
		return nil, fmt.Errorf("unknown vehicle type: %s", req.VehicleType)
	}
	priceValue, ok := req.PriceTrip.Float64()
	if !ok || priceValue < 0 {
		return nil, fmt.Errorf("price must be a non-negative number")
	}

	typeTrip := req.TypeTrip
	if typeTrip == "" {
		typeTrip = "STANDARD"
	}

	price := &TripPrice{
		RouteID:     routeID,
		VehicleType: string(vehicleType),
		PriceTrip:   priceValue,
		TypeTrip:    typeTrip,
	}
	if err := s.repo.CreatePrice(ctx, price); err != nil {
		return nil, fmt.Errorf("failed to create price record: %w", err)
	}
	return price, nil
}

func (s *service) GetPrices(ctx context.Context) ([]TripPrice, error) {
	return s.repo.GetPrices(ctx)
}

func (s *service) UpdatePrice(ctx context.Context, id string, req UpdateTripPriceRequest) (*TripPrice, error) {
	priceID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrPriceNotFound
	}

	updates := map[string]interface{}{}
	if req.PriceTrip != nil {
		v, ok := req.PriceTrip.Float64()
		if !ok || v < 0 {
			return nil, fmt.Errorf("price must be a non-negative number")
		}
		updates["price_trip"] = v
	}
	if req.TypeTrip != nil {
		updates["type_trip"] = *req.TypeTrip
	}
	if len(updates) > 0 {
		if err := s.repo.UpdatePrice(ctx, priceID, updates); err != nil {
			return nil, fmt.Errorf("failed to update price record: %w", err)
		}
	}

	price, err := s.repo.GetPriceByID(ctx, priceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPriceNotFound
		}
		return nil, err
	}
	return price, nil
}

func (s *service) DeletePrice(ctx context.Context, id string) error {
	priceID, err := uuid.Parse(id)
	if err != nil {
		return ErrPriceNotFound
	}
	return s.repo.DeletePrice(ctx, priceID)
}

// InvalidateTripCaches drops every cached search result and roster
// touching the trip. Called on booking changes as well as trip edits;
// search keys are not tracked per trip, so the whole trips namespace
// goes.
func (s *service) InvalidateTripCaches(ctx context.Context, tripID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeletePattern(ctx, constants.TripInvalidationPattern())
}
