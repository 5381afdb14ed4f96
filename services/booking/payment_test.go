package booking

import (
	"context"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentMarksBookingPaid(t *testing.T) {
	svc, ledger := newTestService()

	b, err := svc.SubmitBooking(context.Background(), cleaningCandidate())
	require.NoError(t, err)

	p, err := svc.RecordPayment(context.Background(), models.PaymentRequest{
		BookingID:     b.ID,
		TransactionID: "tx1",
		Amount:        80,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.Equal(t, 1, ledger.paymentCount())

	paid, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, "tx1", paid.TransactionID)
}

func TestRecordPaymentRejectsRepeatConfirmation(t *testing.T) {
	svc, ledger := newTestService()

	b, err := svc.SubmitBooking(context.Background(), cleaningCandidate())
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), models.PaymentRequest{
		BookingID: b.ID, TransactionID: "tx1", Amount: 80,
	})
	require.NoError(t, err)

	// A second confirmation with a different transaction id must be
	// rejected without touching the booking or appending a payment.
	_, err = svc.RecordPayment(context.Background(), models.PaymentRequest{
		BookingID: b.ID, TransactionID: "tx2", Amount: 80,
	})
	require.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Equal(t, 1, ledger.paymentCount())

	paid, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, "tx1", paid.TransactionID)
}

func TestRecordPaymentUnknownBookingLeavesNoOrphan(t *testing.T) {
	svc, ledger := newTestService()

	_, err := svc.RecordPayment(context.Background(), models.PaymentRequest{
		BookingID: "no-such-booking", TransactionID: "tx1", Amount: 80,
	})
	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, 0, ledger.paymentCount())
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(8000), toMinorUnits(80))
	assert.Equal(t, int64(8050), toMinorUnits(80.50))
	assert.Equal(t, int64(10), toMinorUnits(0.1))
}
