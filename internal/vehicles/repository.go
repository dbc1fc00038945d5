package vehicles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for vehicle operations
type Repository interface {
	CreateVehicle(ctx context.Context, vehicle *Vehicle, seats []VehicleSeat) error
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	GetVehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error)
	GetVehicleSeats(ctx context.Context, vehicleID uuid.UUID) ([]VehicleSeat, error)
	UpdateVehicle(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new vehicle repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateVehicle inserts the vehicle and its generated seat roster in one
// transaction so a vehicle can never exist with a partial roster.
func (r *repository) CreateVehicle(ctx context.Context, vehicle *Vehicle, seats []VehicleSeat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		for i := range seats {
			seats[i].VehicleID = vehicle.ID
		}
		return tx.Create(&seats).Error
	})
}

func (r *repository) GetVehicleByID(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	var vehicle Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *repository) GetVehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error) {
	var list []Vehicle
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("created_at").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetVehicleSeats(ctx context.Context, vehicleID uuid.UUID) ([]VehicleSeat, error) {
	var seats []VehicleSeat
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("ordinal").
		Find(&seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *repository) UpdateVehicle(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Vehicle{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Vehicle{}, "id = ?", id).Error
}
