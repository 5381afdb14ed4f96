package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreatePaymentIntent handles POST /api/payments/intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret, err := h.Svc.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.Logger.Error("CreatePaymentIntent: gateway call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment handles POST /api/payments.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.Svc.RecordPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, booking.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "booking already paid"})
		default:
			h.Logger.Error("RecordPayment: reconciliation failed", zap.String("bookingID", req.BookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentId": payment.ID})
}
