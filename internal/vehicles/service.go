package vehicles

import (
	"context"
	"errors"
	"fmt"

	"coachbooking/internal/seatmap"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrUnknownVehicleType = errors.New("unknown vehicle type")
)

type Service interface {
	CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*Vehicle, error)
	GetVehicleByID(ctx context.Context, id string) (*Vehicle, error)
	GetVehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error)
	GetVehicleSeats(ctx context.Context, id string) ([]VehicleSeat, error)
	UpdateVehicle(ctx context.Context, id string, req UpdateVehicleRequest) (*Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateVehicle registers a coach and generates its full seat roster
// from the layout of its type: 45, 9, 36 or 22 seats with floor-aware
// names. SeatCount always comes from the layout, never from the caller.
func (s *service) CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*Vehicle, error) {
	vehicleType, ok := seatmap.ParseVehicleType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVehicleType, req.Type)
	}
	layout, _ := seatmap.LayoutFor(string(vehicleType))

	vehicle := &Vehicle{
		Name:         req.Name,
		Type:         string(vehicleType),
		SeatCount:    layout.SeatCount,
		LicensePlate: req.LicensePlate,
		Active:       true,
	}

	names := layout.SeatNames()
	seats := make([]VehicleSeat, 0, layout.SeatCount)
	for i, name := range names {
		floor := 1
		if layout.Floors > 1 {
			floor = i/layout.SeatsPerFloor + 1
		}
		seats = append(seats, VehicleSeat{
			Ordinal: i,
			Name:    name,
			Floor:   floor,
		})
	}

	if err := s.repo.CreateVehicle(ctx, vehicle, seats); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *service) GetVehicleByID(ctx context.Context, id string) (*Vehicle, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	vehicle, err := s.repo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *service) GetVehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error) {
	return s.repo.GetVehicles(ctx, activeOnly)
}

func (s *service) GetVehicleSeats(ctx context.Context, id string) ([]VehicleSeat, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	return s.repo.GetVehicleSeats(ctx, vehicleID)
}

func (s *service) UpdateVehicle(ctx context.Context, id string, req UpdateVehicleRequest) (*Vehicle, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateVehicle(ctx, vehicleID, updates); err != nil {
			return nil, fmt.Errorf("failed to update vehicle: %w", err)
		}
	}

	return s.GetVehicleByID(ctx, id)
}

func (s *service) DeleteVehicle(ctx context.Context, id string) error {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return ErrVehicleNotFound
	}
	if err := s.repo.DeleteVehicle(ctx, vehicleID); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
