package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coachbooking/internal/shared/middleware"
	"coachbooking/internal/shared/utils/response"
	"coachbooking/internal/trips"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateBooking handles POST /bookings
func (ctrl *Controller) CreateBooking(ctx *gin.Context) {
	userID, email, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.CreateBooking(ctx.Request.Context(), userID, email, req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// ConfirmBooking handles POST /bookings/:id/confirm
func (ctrl *Controller) ConfirmBooking(ctx *gin.Context) {
	userID, email, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	booking, err := ctrl.service.ConfirmBooking(ctx.Request.Context(), userID, email, ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to confirm booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking confirmed successfully", booking, nil)
}

// CancelBooking handles POST /bookings/:id/cancel
func (ctrl *Controller) CancelBooking(ctx *gin.Context) {
	userID, email, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	booking, err := ctrl.service.CancelBooking(ctx.Request.Context(), userID, email, ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to cancel booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

// GetBooking handles GET /bookings/:id
func (ctrl *Controller) GetBooking(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	booking, err := ctrl.service.GetBooking(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// GetMyBookings handles GET /bookings
func (ctrl *Controller) GetMyBookings(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	bookings, err := ctrl.service.GetUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func currentUser(ctx *gin.Context) (uuid.UUID, string, bool) {
	idStr, ok := middleware.CurrentUserID(ctx)
	if !ok {
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", false
	}
	email, _ := ctx.Get("user_email")
	emailStr, _ := email.(string)
	return id, emailStr, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, trips.ErrTripNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotBookingOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrSeatNotOnVehicle), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrTripNotBookable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrSeatNotAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
