package routes

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

// LOCATIONS

func (c *Controller) CreateLocation(ctx *gin.Context) {
	var req CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	loc, err := c.service.CreateLocation(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create location", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Location created successfully", loc, nil)
}

func (c *Controller) GetLocations(ctx *gin.Context) {
	locs, err := c.service.GetLocations(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get locations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Locations retrieved successfully", locs, nil)
}

func (c *Controller) UpdateLocation(ctx *gin.Context) {
	var req UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	loc, err := c.service.UpdateLocation(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update location", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Location updated successfully", loc, nil)
}

func (c *Controller) DeleteLocation(ctx *gin.Context) {
	if err := c.service.DeleteLocation(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete location", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Location deleted successfully", nil, nil)
}

// ROUTES

func (c *Controller) CreateRoute(ctx *gin.Context) {
	var req CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	route, err := c.service.CreateRoute(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Route created successfully", route, nil)
}

func (c *Controller) GetRoute(ctx *gin.Context) {
	route, err := c.service.GetRouteByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route retrieved successfully", route, nil)
}

func (c *Controller) GetRoutes(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"
	result, err := c.service.GetRoutes(ctx.Request.Context(), activeOnly)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get routes", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Routes retrieved successfully", result, nil)
}

func (c *Controller) UpdateRoute(ctx *gin.Context) {
	var req UpdateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	route, err := c.service.UpdateRoute(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route updated successfully", route, nil)
}

func (c *Controller) DeleteRoute(ctx *gin.Context) {
	if err := c.service.DeleteRoute(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route deleted successfully", nil, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrLocationNotFound), errors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSameEndpoints):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
