package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleaningCandidate() models.BookingCandidate {
	return models.BookingCandidate{
		Email:           "a@x.com",
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2024-05-01",
		Slot:            "9am",
		Price:           80,
	}
}

func TestSubmitBookingAccepted(t *testing.T) {
	svc, ledger := newTestService()

	b, err := svc.SubmitBooking(context.Background(), cleaningCandidate())
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	assert.False(t, b.Paid)
	assert.Empty(t, b.TransactionID)
	assert.Equal(t, 80.0, b.Price)
	assert.Equal(t, 1, ledger.bookingCount())
}

func TestSubmitBookingDuplicateTriple(t *testing.T) {
	svc, ledger := newTestService()

	_, err := svc.SubmitBooking(context.Background(), cleaningCandidate())
	require.NoError(t, err)

	// Same patient, treatment and date with a different slot is still a
	// duplicate, and the ledger must be untouched.
	second := cleaningCandidate()
	second.Slot = "10am"
	_, err = svc.SubmitBooking(context.Background(), second)

	var admErr *AdmissionError
	require.ErrorAs(t, err, &admErr)
	assert.Equal(t, CodeDuplicateBooking, admErr.Code)
	assert.Contains(t, admErr.Message, "2024-05-01")
	assert.Equal(t, 1, ledger.bookingCount())
}

func TestSubmitBookingSlotTaken(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SubmitBooking(context.Background(), cleaningCandidate())
	require.NoError(t, err)

	// Different patient, same treatment/date/slot.
	other := cleaningCandidate()
	other.Email = "b@x.com"
	_, err = svc.SubmitBooking(context.Background(), other)

	var admErr *AdmissionError
	require.ErrorAs(t, err, &admErr)
	assert.Equal(t, CodeSlotTaken, admErr.Code)
}

func TestSubmitBookingUnknownTreatment(t *testing.T) {
	svc, ledger := newTestService()

	cand := cleaningCandidate()
	cand.Treatment = "Mind Reading"
	_, err := svc.SubmitBooking(context.Background(), cand)

	var admErr *AdmissionError
	require.ErrorAs(t, err, &admErr)
	assert.Equal(t, CodeInvalidBooking, admErr.Code)
	assert.Equal(t, 0, ledger.bookingCount())
}

func TestSubmitBookingSlotOutsideTemplate(t *testing.T) {
	svc, ledger := newTestService()

	cand := cleaningCandidate()
	cand.Slot = "midnight"
	_, err := svc.SubmitBooking(context.Background(), cand)

	var admErr *AdmissionError
	require.ErrorAs(t, err, &admErr)
	assert.Equal(t, CodeInvalidBooking, admErr.Code)
	assert.Equal(t, 0, ledger.bookingCount())
}

func TestSubmitBookingValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name   string
		mutate func(*models.BookingCandidate)
	}{
		{"missing email", func(c *models.BookingCandidate) { c.Email = "" }},
		{"missing treatment", func(c *models.BookingCandidate) { c.Treatment = "" }},
		{"missing slot", func(c *models.BookingCandidate) { c.Slot = "" }},
		{"bad date", func(c *models.BookingCandidate) { c.AppointmentDate = "May 1st" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cand := cleaningCandidate()
			tc.mutate(&cand)
			_, err := svc.SubmitBooking(context.Background(), cand)

			var admErr *AdmissionError
			require.ErrorAs(t, err, &admErr)
			assert.Equal(t, CodeInvalidBooking, admErr.Code)
		})
	}
}

func TestSubmitBookingDefaultsPriceFromCatalog(t *testing.T) {
	svc, _ := newTestService()

	cand := cleaningCandidate()
	cand.Price = 0
	b, err := svc.SubmitBooking(context.Background(), cand)
	require.NoError(t, err)
	assert.Equal(t, 80.0, b.Price)
}

func TestSubmitBookingConcurrentIdenticalCandidates(t *testing.T) {
	svc, ledger := newTestService()

	const n = 20
	var wg sync.WaitGroup
	accepted := make(chan struct{}, n)
	rejected := make(chan struct{}, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitBooking(context.Background(), cleaningCandidate())
			if err == nil {
				accepted <- struct{}{}
				return
			}
			var admErr *AdmissionError
			if errors.As(err, &admErr) && admErr.Code == CodeDuplicateBooking {
				rejected <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(accepted)
	close(rejected)

	assert.Equal(t, 1, len(accepted))
	assert.Equal(t, n-1, len(rejected))
	assert.Equal(t, 1, ledger.bookingCount())
}
