package booking

import (
	"context"
	"errors"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// GetBooking retrieves one booking by id.
func (svc *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListBookingsByEmail returns the patient's bookings. Callers are expected to
// have matched the email against the verified request identity.
func (svc *DefaultBookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return svc.Repo.ListByEmail(ctx, email)
}
