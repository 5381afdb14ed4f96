package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"

	"github.com/go-redis/redis/v8"
)

// Service is the appointment booking core: slot availability, booking
// admission, and payment reconciliation.
type Service interface {
	GetAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error)
	ListTreatmentNames(ctx context.Context) ([]models.TreatmentName, error)
	SubmitBooking(ctx context.Context, cand models.BookingCandidate) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
	RecordPayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error)
}

// ReminderScheduler schedules the appointment-day reminder for a paid
// booking. Delivery is out of scope here; the worker decides what a due
// reminder means.
type ReminderScheduler interface {
	ScheduleReminder(booking models.Booking) error
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	TreatmentRepo treatmentRepo.TreatmentRepository
	Repo          bookingRepo.BookingRepository
	Cache         *redis.Client     // optional availability snapshot cache
	Reminders     ReminderScheduler // optional, nil disables reminders
}
