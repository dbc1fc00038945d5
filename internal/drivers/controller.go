package drivers

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

func (c *Controller) CreateDriver(ctx *gin.Context) {
	var req CreateDriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	driver, err := c.service.CreateDriver(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create driver", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Driver created successfully", driver, nil)
}

func (c *Controller) GetDriver(ctx *gin.Context) {
	driver, err := c.service.GetDriverByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrDriverNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get driver", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Driver retrieved successfully", driver, nil)
}

func (c *Controller) GetDrivers(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"
	list, err := c.service.GetDrivers(ctx.Request.Context(), activeOnly)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get drivers", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Drivers retrieved successfully", list, nil)
}

func (c *Controller) UpdateDriver(ctx *gin.Context) {
	var req UpdateDriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	driver, err := c.service.UpdateDriver(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrDriverNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update driver", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Driver updated successfully", driver, nil)
}

func (c *Controller) DeleteDriver(ctx *gin.Context) {
	if err := c.service.DeleteDriver(ctx.Request.Context(), ctx.Param("id")); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrDriverNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete driver", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Driver deleted successfully", nil, nil)
}
