package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coachbooking/internal/auth"
	"coachbooking/internal/bookings"
	"coachbooking/internal/content"
	"coachbooking/internal/drivers"
	coachroutes "coachbooking/internal/routes"
	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/database"
	"coachbooking/internal/trips"
	"coachbooking/internal/vehicles"
	"coachbooking/pkg/cache"
	"coachbooking/pkg/logger"
)

// Router assembles every domain behind the API prefix
type Router struct {
	config   *config.Config
	db       *database.DB
	logger   *logger.Logger
	notifier bookings.Notifier

	cacheService   cache.Service
	vehicleService vehicles.Service
	tripService    trips.Service
}

// NewRouter creates a new router instance. notifier may be nil when the
// notification pipeline is disabled.
func NewRouter(cfg *config.Config, db *database.DB, notifier bookings.Notifier) *Router {
	r := &Router{
		config:   cfg,
		db:       db,
		logger:   logger.GetDefault(),
		notifier: notifier,
	}
	if db.Redis != nil {
		r.cacheService = cache.NewService(db.Redis)
	}
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupRouteRoutes(api)
		r.setupVehicleRoutes(api)
		r.setupDriverRoutes(api)
		r.setupTripRoutes(api)
		r.setupBookingRoutes(api)
		r.setupContentRoutes(api)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "coachbooking-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "coachbooking-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	repo := auth.NewRepository(r.db.PostgreSQL)
	service := auth.NewService(repo, r.config)
	controller := auth.NewController(service)

	auth.SetupAuthRoutes(rg, controller, r.config)
}

func (r *Router) setupRouteRoutes(rg *gin.RouterGroup) {
	repo := coachroutes.NewRepository(r.db.PostgreSQL)
	service := coachroutes.NewService(repo, r.cacheService)
	controller := coachroutes.NewController(service)

	coachroutes.SetupRouteRoutes(rg, controller, r.config)
}

func (r *Router) setupVehicleRoutes(rg *gin.RouterGroup) {
	repo := vehicles.NewRepository(r.db.PostgreSQL)
	r.vehicleService = vehicles.NewService(repo)
	controller := vehicles.NewController(r.vehicleService)

	vehicles.SetupVehicleRoutes(rg, controller, r.config)
}

func (r *Router) setupDriverRoutes(rg *gin.RouterGroup) {
	repo := drivers.NewRepository(r.db.PostgreSQL)
	service := drivers.NewService(repo)
	controller := drivers.NewController(service)

	drivers.SetupDriverRoutes(rg, controller, r.config)
}

func (r *Router) setupTripRoutes(rg *gin.RouterGroup) {
	repo := trips.NewRepository(r.db.PostgreSQL)
	// vehicle routes are registered first so the seat source exists here
	r.tripService = trips.NewService(repo, r.vehicleService, r.cacheService)
	controller := trips.NewController(r.tripService)

	trips.SetupTripRoutes(rg, controller, r.config)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	repo := bookings.NewRepository(r.db.PostgreSQL)
	service := bookings.NewService(repo, r.tripService, r.notifier, r.logger)

	// The trip roster asks the booking service which seats are held or
	// sold; the edge points this way to avoid a package cycle.
	r.tripService.SetSeatStatusSource(service)

	controller := bookings.NewController(service)
	bookings.SetupBookingRoutes(rg, controller, r.config)
}

func (r *Router) setupContentRoutes(rg *gin.RouterGroup) {
	repo := content.NewRepository(r.db.PostgreSQL)
	service := content.NewService(repo, r.cacheService)
	controller := content.NewController(service)

	content.SetupContentRoutes(rg, controller, r.config)
}
