package routes

import (
	"context"
	"errors"
	"fmt"

	"coachbooking/internal/shared/constants"
	"coachbooking/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrRouteNotFound    = errors.New("route not found")
	ErrSameEndpoints    = errors.New("route endpoints must differ")
)

type Service interface {
	// Locations
	CreateLocation(ctx context.Context, req CreateLocationRequest) (*Location, error)
	GetLocations(ctx context.Context) ([]Location, error)
	UpdateLocation(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error)
	DeleteLocation(ctx context.Context, id string) error

	// Routes
	CreateRoute(ctx context.Context, req CreateRouteRequest) (*Route, error)
	GetRouteByID(ctx context.Context, id string) (*Route, error)
	GetRoutes(ctx context.Context, activeOnly bool) ([]Route, error)
	UpdateRoute(ctx context.Context, id string, req UpdateRouteRequest) (*Route, error)
	DeleteRoute(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateLocation(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	loc := &Location{
		Name:     req.Name,
		Province: req.Province,
	}
	if err := s.repo.CreateLocation(ctx, loc); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	s.invalidate(ctx)
	return loc, nil
}

func (s *service) GetLocations(ctx context.Context) ([]Location, error) {
	var locs []Location
	if s.cache != nil {
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_LOCATIONS_LIST, constants.TTL_STATIC_LONG,
			func() (interface{}, error) { return s.repo.GetLocations(ctx) }, &locs)
		if err == nil {
			return locs, nil
		}
	}
	return s.repo.GetLocations(ctx)
}

func (s *service) UpdateLocation(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	locID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Province != nil {
		updates["province"] = *req.Province
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateLocation(ctx, locID, updates); err != nil {
			return nil, fmt.Errorf("failed to update location: %w", err)
		}
	}
	s.invalidate(ctx)

	loc, err := s.repo.GetLocationByID(ctx, locID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (s *service) DeleteLocation(ctx context.Context, id string) error {
	locID, err := uuid.Parse(id)
	if err != nil {
		return ErrLocationNotFound
	}
	if err := s.repo.DeleteLocation(ctx, locID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) CreateRoute(ctx context.Context, req CreateRouteRequest) (*Route, error) {
	fromID, err := uuid.Parse(req.FromLocationID)
	if err != nil {
		return nil, ErrLocationNotFound
	}
	toID, err := uuid.Parse(req.ToLocationID)
	if err != nil {
		return nil, ErrLocationNotFound
	}
	if fromID == toID {
		return nil, ErrSameEndpoints
	}

	for _, id := range []uuid.UUID{fromID, toID} {
		if _, err := s.repo.GetLocationByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}
	}

	route := &Route{
		FromLocationID: fromID,
		ToLocationID:   toID,
		DistanceKm:     req.DistanceKm,
		Active:         true,
	}
	if err := s.repo.CreateRoute(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	s.invalidate(ctx)

	return s.repo.GetRouteByID(ctx, route.ID)
}

func (s *service) GetRouteByID(ctx context.Context, id string) (*Route, error) {
	routeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRouteNotFound
	}
	route, err := s.repo.GetRouteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

func (s *service) GetRoutes(ctx context.Context, activeOnly bool) ([]Route, error) {
	return s.repo.GetRoutes(ctx, activeOnly)
}

func (s *service) UpdateRoute(ctx context.Context, id string, req UpdateRouteRequest) (*Route, error) {
	routeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRouteNotFound
	}

	updates := map[string]interface{}{}
	if req.DistanceKm != nil {
		updates["distance_km"] = *req.DistanceKm
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateRoute(ctx, routeID, updates); err != nil {
			return nil, fmt.Errorf("failed to update route: %w", err)
		}
	}
	s.invalidate(ctx)

	return s.GetRouteByID(ctx, id)
}

func (s *service) DeleteRoute(ctx context.Context, id string) error {
	routeID, err := uuid.Parse(id)
	if err != nil {
		return ErrRouteNotFound
	}
	if err := s.repo.DeleteRoute(ctx, routeID); err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, constants.CACHE_KEY_LOCATIONS_LIST)
	_ = s.cache.Delete(ctx, constants.CACHE_KEY_ROUTES_LIST)
}
