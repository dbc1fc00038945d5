package drivers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for driver operations
type Repository interface {
	CreateDriver(ctx context.Context, driver *Driver) error
	GetDriverByID(ctx context.Context, id uuid.UUID) (*Driver, error)
	GetDrivers(ctx context.Context, activeOnly bool) ([]Driver, error)
	UpdateDriver(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteDriver(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new driver repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateDriver(ctx context.Context, driver *Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *repository) GetDriverByID(ctx context.Context, id uuid.UUID) (*Driver, error) {
	var driver Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *repository) GetDrivers(ctx context.Context, activeOnly bool) ([]Driver, error) {
	var list []Driver
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("full_name").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) UpdateDriver(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Driver{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Driver{}, "id = ?", id).Error
}
