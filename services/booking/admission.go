package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// SubmitBooking validates and admits a booking candidate against the ledger.
// The duplicate check is not a read: admission is a single conditional
// insert, and the ledger's unique indexes decide the winner when identical
// candidates race. The returned error is an *AdmissionError for any rejection
// the patient can act on.
func (svc *DefaultBookingService) SubmitBooking(ctx context.Context, cand models.BookingCandidate) (*models.Booking, error) {
	if err := validateCandidate(cand); err != nil {
		return nil, err
	}

	treatment, err := svc.TreatmentRepo.GetByName(ctx, cand.Treatment)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrNotFound) {
			return nil, NewInvalidBookingError(fmt.Sprintf("unknown treatment %q", cand.Treatment))
		}
		return nil, err
	}
	if !slotInTemplate(treatment.Slots, cand.Slot) {
		return nil, NewInvalidBookingError(fmt.Sprintf("%s does not offer a %s slot", treatment.Name, cand.Slot))
	}

	price := cand.Price
	if price == 0 {
		price = treatment.Price
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		Email:           cand.Email,
		Treatment:       cand.Treatment,
		AppointmentDate: cand.AppointmentDate,
		Slot:            cand.Slot,
		Price:           price,
		Paid:            false,
		CreatedAt:       time.Now(),
	}

	if err := svc.Repo.Insert(ctx, booking); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrDuplicateBooking):
			return nil, NewDuplicateBookingError(cand.AppointmentDate)
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			return nil, NewSlotTakenError(cand.Slot, cand.AppointmentDate)
		default:
			return nil, err
		}
	}

	svc.invalidateAvailability(ctx, cand.AppointmentDate)

	utils.GetLogger().Info("booking admitted",
		zap.String("bookingID", booking.ID),
		zap.String("treatment", booking.Treatment),
		zap.String("date", booking.AppointmentDate),
		zap.String("slot", booking.Slot))
	return booking, nil
}

func validateCandidate(cand models.BookingCandidate) error {
	if cand.Email == "" || cand.Treatment == "" || cand.Slot == "" {
		return NewInvalidBookingError("email, treatment and slot are required")
	}
	if _, err := time.Parse(dateLayout, cand.AppointmentDate); err != nil {
		return NewInvalidBookingError(fmt.Sprintf("appointment date must be in %s format", dateLayout))
	}
	return nil
}

func slotInTemplate(template []string, slot string) bool {
	for _, s := range template {
		if s == slot {
			return true
		}
	}
	return false
}
