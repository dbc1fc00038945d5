package trips

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for trip operations
type Repository interface {
	// Trips
	CreateTrip(ctx context.Context, trip *Trip) error
	GetTripByID(ctx context.Context, id uuid.UUID) (*Trip, error)
	SearchTrips(ctx context.Context, fromName, toName, date string) ([]Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	// Price records
	CreatePrice(ctx context.Context, price *TripPrice) error
	GetPriceByID(ctx context.Context, id uuid.UUID) (*TripPrice, error)
	GetPrices(ctx context.Context) ([]TripPrice, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeletePrice(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new trip repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTrip(ctx context.Context, trip *Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *repository) GetTripByID(ctx context.Context, id uuid.UUID) (*Trip, error) {
	var trip Trip
	err := r.db.WithContext(ctx).
		Preload("Route.FromLocation").
		Preload("Route.ToLocation").
		Preload("Vehicle").
		Preload("Price").
		First(&trip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// SearchTrips finds scheduled trips between two locations on a date.
// Locations match by name; the search form feeds names, not IDs.
func (r *repository) SearchTrips(ctx context.Context, fromName, toName, date string) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN routes ON routes.id = trips.route_id").
		Joins("JOIN locations from_loc ON from_loc.id = routes.from_location_id").
		Joins("JOIN locations to_loc ON to_loc.id = routes.to_location_id").
		Where("from_loc.name ILIKE ? AND to_loc.name ILIKE ?", fromName, toName).
		Where("trips.start_date = ?", date).
		Where("trips.status = ?", TripStatusScheduled).
		Preload("Route.FromLocation").
		Preload("Route.ToLocation").
		Preload("Vehicle").
		Preload("Price").
		Order("trips.start_time").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *repository) UpdateTrip(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Trip{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Trip{}, "id = ?", id).Error
}

func (r *repository) CreatePrice(ctx context.Context, price *TripPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *repository) GetPriceByID(ctx context.Context, id uuid.UUID) (*TripPrice, error) {
	var price TripPrice
	if err := r.db.WithContext(ctx).First(&price, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *repository) GetPrices(ctx context.Context) ([]TripPrice, error) {
	var prices []TripPrice
	if err := r.db.WithContext(ctx).Order("created_at").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *repository) UpdatePrice(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&TripPrice{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeletePrice(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&TripPrice{}, "id = ?", id).Error
}
