package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kivulounge/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the submission endpoint onto the optionally
// authenticated group (anonymous callers get the manual-contact handoff)
// and the guest dashboard endpoints onto the authenticated group.
func (h *Handler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.POST("/bookings", h.Submit)

	authed.GET("/bookings/my", h.MyBookings)
	authed.POST("/bookings/:id/cancel", h.Cancel)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	identity := Identity{UserID: c.GetInt64("user_id")}

	result, err := h.service.Submit(c.Request.Context(), identity, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", "Stay dates and guest name/email are required")
		case errors.Is(err, ErrNotAvailable):
			response.Error(c, http.StatusConflict, "UNAVAILABLE", "Room is not available for the selected dates")
		case errors.Is(err, ErrAvailabilityCheck):
			response.Error(c, http.StatusBadGateway, "TRANSPORT_ERROR", "Could not check availability, please try again")
		case errors.Is(err, ErrPersist):
			response.Error(c, http.StatusBadGateway, "PERSIST_ERROR", "Could not store the booking, please try again")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit booking")
		}
		return
	}

	if result.Outcome == OutcomeHandedOff {
		response.Success(c, http.StatusOK, gin.H{
			"outcome":     result.Outcome,
			"message":     result.ContactMessage,
			"contact_url": result.ContactURL,
		})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"outcome": result.Outcome,
		"booking": gin.H{
			"id":         result.Booking.ID,
			"status":     result.Booking.Status,
			"total_cost": result.Booking.TotalCost,
		},
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.MyBookings(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_STATUS", "Only pending bookings can be cancelled")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
