package routes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for route and location operations
type Repository interface {
	// Locations
	CreateLocation(ctx context.Context, loc *Location) error
	GetLocationByID(ctx context.Context, id uuid.UUID) (*Location, error)
	GetLocations(ctx context.Context) ([]Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	// Routes
	CreateRoute(ctx context.Context, route *Route) error
	GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error)
	GetRoutes(ctx context.Context, activeOnly bool) ([]Route, error)
	UpdateRoute(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new route repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateLocation(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *repository) GetLocationByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	var loc Location
	if err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *repository) GetLocations(ctx context.Context) ([]Location, error) {
	var locs []Location
	if err := r.db.WithContext(ctx).Order("province, name").Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

func (r *repository) UpdateLocation(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Location{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Location{}, "id = ?", id).Error
}

func (r *repository) CreateRoute(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	var route Route
	err := r.db.WithContext(ctx).
		Preload("FromLocation").
		Preload("ToLocation").
		First(&route, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *repository) GetRoutes(ctx context.Context, activeOnly bool) ([]Route, error) {
	var routes []Route
	query := r.db.WithContext(ctx).
		Preload("FromLocation").
		Preload("ToLocation")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("created_at").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *repository) UpdateRoute(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Route{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Route{}, "id = ?", id).Error
}
