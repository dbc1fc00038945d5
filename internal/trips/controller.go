package trips

import (
	"errors"
	"net/http"

	"coachbooking/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CUSTOMER-FACING

func (c *Controller) SearchTrips(ctx *gin.Context) {
	var req SearchTripsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	trips, err := c.service.SearchTrips(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to search trips", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Trips retrieved successfully", trips, nil)
}

func (c *Controller) GetTrip(ctx *gin.Context) {
	trip, err := c.service.GetTripByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get trip", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Trip retrieved successfully", trip, nil)
}

func (c *Controller) GetSeatRoster(ctx *gin.Context) {
	roster, err := c.service.GetSeatRoster(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get seat roster", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat roster retrieved successfully", roster, nil)
}

// ADMIN

func (c *Controller) CreateTrip(ctx *gin.Context) {
	var req CreateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	trip, err := c.service.CreateTrip(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create trip", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Trip created successfully", trip, nil)
}

func (c *Controller) UpdateTrip(ctx *gin.Context) {
	var req UpdateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	trip, err := c.service.UpdateTrip(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update trip", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Trip updated successfully", trip, nil)
}

func (c *Controller) DeleteTrip(ctx *gin.Context) {
	if err := c.service.DeleteTrip(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete trip", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Trip deleted successfully", nil, nil)
}

func (c *Controller) CreatePrice(ctx *gin.Context) {
	var req CreateTripPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	price, err := c.service.CreatePrice(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create price record", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Price record created successfully", price, nil)
}

func (c *Controller) GetPrices(ctx *gin.Context) {
	prices, err := c.service.GetPrices(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get price records", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price records retrieved successfully", prices, nil)
}

func (c *Controller) UpdatePrice(ctx *gin.Context) {
	var req UpdateTripPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	price, err := c.service.UpdatePrice(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update price record", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price record updated successfully", price, nil)
}

func (c *Controller) DeletePrice(ctx *gin.Context) {
	if err := c.service.DeletePrice(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete price record", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price record deleted successfully", nil, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrTripNotFound), errors.Is(err, ErrPriceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoLayout):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
