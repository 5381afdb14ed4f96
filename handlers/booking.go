package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the availability, booking and payment endpoints.
type BookingHandler struct {
	Svc    booking.Service
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetAvailability handles GET /api/appointments/options?date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date query parameter"})
		return
	}

	view, err := h.Svc.GetAvailability(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("GetAvailability: failed to compute availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListTreatmentNames handles GET /api/treatments/names.
func (h *BookingHandler) ListTreatmentNames(c *gin.Context) {
	names, err := h.Svc.ListTreatmentNames(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListTreatmentNames: failed to fetch names", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch treatment names"})
		return
	}
	c.JSON(http.StatusOK, names)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var cand models.BookingCandidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"acknowledged": false, "message": err.Error()})
		return
	}

	b, err := h.Svc.SubmitBooking(c.Request.Context(), cand)
	if err != nil {
		var admErr *booking.AdmissionError
		if errors.As(err, &admErr) {
			status := http.StatusConflict
			if admErr.Code == booking.CodeInvalidBooking {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"acknowledged": false, "message": admErr.Message})
			return
		}
		h.Logger.Error("CreateBooking: admission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"acknowledged": false, "message": "failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "bookingId": b.ID})
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Svc.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("GetBookingByID: lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings handles GET /api/bookings?email=. The email must match the
// verified token identity; anything else is forbidden.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	identity, _ := c.Get("email")
	if email == "" || email != identity {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	bookings, err := h.Svc.ListBookingsByEmail(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("ListBookings: lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
