package vehicles

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

func (c *Controller) CreateVehicle(ctx *gin.Context) {
	var req CreateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	vehicle, err := c.service.CreateVehicle(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create vehicle", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Vehicle created successfully", vehicle, nil)
}

func (c *Controller) GetVehicle(ctx *gin.Context) {
	vehicle, err := c.service.GetVehicleByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get vehicle", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Vehicle retrieved successfully", vehicle, nil)
}

func (c *Controller) GetVehicles(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"
	list, err := c.service.GetVehicles(ctx.Request.Context(), activeOnly)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get vehicles", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Vehicles retrieved successfully", list, nil)
}

func (c *Controller) GetVehicleSeats(ctx *gin.Context) {
	seats, err := c.service.GetVehicleSeats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get vehicle seats", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Vehicle seats retrieved successfully", seats, nil)
}

func (c *Controller) UpdateVehicle(ctx *gin.Context) {
	var req UpdateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	vehicle, err := c.service.UpdateVehicle(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update vehicle", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Vehicle updated successfully", vehicle, nil)
}

func (c *Controller) DeleteVehicle(ctx *gin.Context) {
	if err := c.service.DeleteVehicle(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete vehicle", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Vehicle deleted successfully", nil, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownVehicleType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
