package booking

import (
	"context"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailabilityNoBookings(t *testing.T) {
	svc, _ := newTestService()

	view, err := svc.GetAvailability(context.Background(), "2024-05-01")
	require.NoError(t, err)
	require.Len(t, view, 2)

	assert.Equal(t, "Teeth Cleaning", view[0].Name)
	assert.Equal(t, 80.0, view[0].Price)
	assert.Equal(t, []string{"9am", "10am", "11am"}, view[0].Slots)

	assert.Equal(t, "Oral Surgery", view[1].Name)
	assert.Equal(t, []string{"1pm", "2pm"}, view[1].Slots)
}

func TestGetAvailabilitySubtractsBookedSlots(t *testing.T) {
	svc, ledger := newTestService()

	require.NoError(t, ledger.Insert(context.Background(), &models.Booking{
		ID: "b1", Email: "a@x.com", Treatment: "Teeth Cleaning",
		AppointmentDate: "2024-05-01", Slot: "10am",
	}))
	require.NoError(t, ledger.Insert(context.Background(), &models.Booking{
		ID: "b2", Email: "b@x.com", Treatment: "Oral Surgery",
		AppointmentDate: "2024-05-01", Slot: "1pm",
	}))

	view, err := svc.GetAvailability(context.Background(), "2024-05-01")
	require.NoError(t, err)

	assert.Equal(t, []string{"9am", "11am"}, view[0].Slots)
	assert.Equal(t, []string{"2pm"}, view[1].Slots)
}

func TestGetAvailabilityIsScopedToDate(t *testing.T) {
	svc, ledger := newTestService()

	require.NoError(t, ledger.Insert(context.Background(), &models.Booking{
		ID: "b1", Email: "a@x.com", Treatment: "Teeth Cleaning",
		AppointmentDate: "2024-05-01", Slot: "9am",
	}))

	// A booking on another date must not affect this date.
	view, err := svc.GetAvailability(context.Background(), "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "10am", "11am"}, view[0].Slots)
}

func TestGetAvailabilityPreservesTemplateOrder(t *testing.T) {
	svc, ledger := newTestService()

	// Book the middle slot; the survivors must keep template order.
	require.NoError(t, ledger.Insert(context.Background(), &models.Booking{
		ID: "b1", Email: "a@x.com", Treatment: "Teeth Cleaning",
		AppointmentDate: "2024-05-01", Slot: "10am",
	}))

	view, err := svc.GetAvailability(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "11am"}, view[0].Slots)
}

func TestRemainingSlotsEmptyTemplate(t *testing.T) {
	assert.Empty(t, remainingSlots(nil, map[string]struct{}{"9am": {}}))
}
