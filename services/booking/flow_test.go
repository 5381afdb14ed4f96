package booking

import (
	"context"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the whole booking flow for one patient: browse, book, get rejected as
// a duplicate, re-check availability, pay.
func TestBookingFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeBookingRepo{}
	catalog := &fakeTreatmentRepo{options: []models.TreatmentOption{
		{ID: "t1", Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}, Price: 80},
	}}
	svc := &DefaultBookingService{TreatmentRepo: catalog, Repo: ledger}

	// Everything open.
	view, err := svc.GetAvailability(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, []string{"9am", "10am", "11am"}, view[0].Slots)

	// Book 9am.
	b, err := svc.SubmitBooking(ctx, models.BookingCandidate{
		Email: "a@x.com", Treatment: "Cleaning",
		AppointmentDate: "2024-05-01", Slot: "9am", Price: 80,
	})
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)

	// Same patient, same day, different slot: duplicate.
	_, err = svc.SubmitBooking(ctx, models.BookingCandidate{
		Email: "a@x.com", Treatment: "Cleaning",
		AppointmentDate: "2024-05-01", Slot: "10am", Price: 80,
	})
	var admErr *AdmissionError
	require.ErrorAs(t, err, &admErr)
	assert.Equal(t, CodeDuplicateBooking, admErr.Code)
	assert.Contains(t, admErr.Message, "2024-05-01")

	// 9am is gone from the availability view.
	view, err = svc.GetAvailability(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10am", "11am"}, view[0].Slots)

	// Pay and verify the ledger entry.
	p, err := svc.RecordPayment(ctx, models.PaymentRequest{
		BookingID: b.ID, TransactionID: "tx1", Amount: 80,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	paid, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, "tx1", paid.TransactionID)

	// The patient sees exactly one booking.
	list, err := svc.ListBookingsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}
