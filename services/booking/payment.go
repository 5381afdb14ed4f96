package booking

import (
	"context"
	"errors"
	"math"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

const paymentCurrency = "usd"

// CreatePaymentIntent asks Stripe for a PaymentIntent over the booking price
// and returns the client secret the patient uses to complete the card payment
// out-of-band. No local state changes here; reconciliation happens when the
// confirmation comes back through RecordPayment.
func (svc *DefaultBookingService) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(toMinorUnits(amount)),
		Currency:           stripe.String(paymentCurrency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// toMinorUnits converts a two-decimal currency amount to the gateway's minor
// unit representation.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// RecordPayment reconciles a payment confirmation with its booking: one
// transactional write marks the booking paid and appends the payment record.
// A missing booking yields ErrBookingNotFound, a repeat confirmation
// ErrAlreadyPaid; neither leaves a payment record behind. On success the
// appointment-day reminder is scheduled.
func (svc *DefaultBookingService) RecordPayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	logger := utils.GetLogger()

	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     req.BookingID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      paymentCurrency,
		CreatedAt:     time.Now(),
	}

	if err := svc.Repo.RecordPayment(ctx, payment); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyPaid):
			return nil, ErrAlreadyPaid
		default:
			return nil, err
		}
	}

	logger.Info("payment reconciled",
		zap.String("paymentID", payment.ID),
		zap.String("bookingID", payment.BookingID),
		zap.String("transactionID", payment.TransactionID))

	if svc.Reminders != nil {
		if b, err := svc.Repo.GetByID(ctx, payment.BookingID); err == nil {
			if err := svc.Reminders.ScheduleReminder(*b); err != nil {
				logger.Warn("failed to schedule reminder", zap.String("bookingID", b.ID), zap.Error(err))
			}
		} else {
			logger.Warn("could not load booking for reminder", zap.String("bookingID", payment.BookingID), zap.Error(err))
		}
	}

	return payment, nil
}
