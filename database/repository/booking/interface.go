package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// Sentinel errors surfaced by the ledger so callers can map storage outcomes
// onto the domain taxonomy without parsing error strings.
var (
	// ErrDuplicateBooking fires when the (appointmentDate, email, treatment)
	// unique index rejects an insert.
	ErrDuplicateBooking = errors.New("patient already has a booking for this treatment and date")
	// ErrSlotTaken fires when the (appointmentDate, treatment, slot) unique
	// index rejects an insert.
	ErrSlotTaken = errors.New("slot already booked for this treatment and date")
	// ErrNotFound is returned when no booking matches the requested id.
	ErrNotFound = errors.New("booking not found")
	// ErrAlreadyPaid is returned when payment reconciliation targets a
	// booking whose paid flag is already set.
	ErrAlreadyPaid = errors.New("booking already paid")
)

// BookingRepository is the booking ledger plus its payment records. Insert is
// the single conditional write admission control relies on: the unique
// indexes make it atomic with respect to concurrent duplicates, so there is
// no separate existence check. RecordPayment runs as one transaction so a
// payment record can never exist without its booking update.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	RecordPayment(ctx context.Context, payment *models.Payment) error
	EnsureIndexes() error
}
