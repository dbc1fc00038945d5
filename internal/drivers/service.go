package drivers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDriverNotFound = errors.New("driver not found")

type Service interface {
	CreateDriver(ctx context.Context, req CreateDriverRequest) (*Driver, error)
	GetDriverByID(ctx context.Context, id string) (*Driver, error)
	GetDrivers(ctx context.Context, activeOnly bool) ([]Driver, error)
	UpdateDriver(ctx context.Context, id string, req UpdateDriverRequest) (*Driver, error)
	DeleteDriver(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateDriver(ctx context.Context, req CreateDriverRequest) (*Driver, error) {
	driver := &Driver{
		FullName:      req.FullName,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		Active:        true,
	}
	if req.VehicleID != "" {
		vehicleID, err := uuid.Parse(req.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("invalid vehicle id: %w", err)
		}
		driver.VehicleID = &vehicleID
	}

	if err := s.repo.CreateDriver(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return driver, nil
}

func (s *service) GetDriverByID(ctx context.Context, id string) (*Driver, error) {
	driverID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrDriverNotFound
	}
	driver, err := s.repo.GetDriverByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return driver, nil
}

func (s *service) GetDrivers(ctx context.Context, activeOnly bool) ([]Driver, error) {
	return s.repo.GetDrivers(ctx, activeOnly)
}

func (s *service) UpdateDriver(ctx context.Context, id string, req UpdateDriverRequest) (*Driver, error) {
	driverID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrDriverNotFound
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.VehicleID != nil {
		if *req.VehicleID == "" {
			updates["vehicle_id"] = nil
		} else {
			vehicleID, err := uuid.Parse(*req.VehicleID)
			if err != nil {
				return nil, fmt.Errorf("invalid vehicle id: %w", err)
			}
			updates["vehicle_id"] = vehicleID
		}
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateDriver(ctx, driverID, updates); err != nil {
			return nil, fmt.Errorf("failed to update driver: %w", err)
		}
	}

	return s.GetDriverByID(ctx, id)
}

func (s *service) DeleteDriver(ctx context.Context, id string) error {
	driverID, err := uuid.Parse(id)
	if err != nil {
		return ErrDriverNotFound
	}
	if err := s.repo.DeleteDriver(ctx, driverID); err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	return nil
}
