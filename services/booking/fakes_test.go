package booking

import (
	"context"
	"sync"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
)

// fakeTreatmentRepo is an in-memory slot catalog.
type fakeTreatmentRepo struct {
	options []models.TreatmentOption
}

func (f *fakeTreatmentRepo) List(ctx context.Context) ([]models.TreatmentOption, error) {
	out := make([]models.TreatmentOption, len(f.options))
	copy(out, f.options)
	return out, nil
}

func (f *fakeTreatmentRepo) GetByName(ctx context.Context, name string) (*models.TreatmentOption, error) {
	for _, opt := range f.options {
		if opt.Name == name {
			o := opt
			return &o, nil
		}
	}
	return nil, treatmentRepo.ErrNotFound
}

func (f *fakeTreatmentRepo) ListNames(ctx context.Context) ([]models.TreatmentName, error) {
	names := make([]models.TreatmentName, 0, len(f.options))
	for _, opt := range f.options {
		names = append(names, models.TreatmentName{Name: opt.Name})
	}
	return names, nil
}

func (f *fakeTreatmentRepo) Seed(ctx context.Context, options []models.TreatmentOption) error {
	f.options = options
	return nil
}

func (f *fakeTreatmentRepo) EnsureIndexes() error { return nil }

// fakeBookingRepo is an in-memory ledger that mirrors the Mongo repo's
// semantics: inserts are conditional on the two unique triples, and
// RecordPayment is all-or-nothing.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	payments []models.Payment
}

func (f *fakeBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.AppointmentDate == b.AppointmentDate && existing.Email == b.Email && existing.Treatment == b.Treatment {
			return bookingRepo.ErrDuplicateBooking
		}
		if existing.AppointmentDate == b.AppointmentDate && existing.Treatment == b.Treatment && existing.Slot == b.Slot {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.bookings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) RecordPayment(ctx context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID == p.BookingID {
			if f.bookings[i].Paid {
				return bookingRepo.ErrAlreadyPaid
			}
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = p.TransactionID
			f.payments = append(f.payments, *p)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

func (f *fakeBookingRepo) bookingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func (f *fakeBookingRepo) paymentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payments)
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	ledger := &fakeBookingRepo{}
	catalog := &fakeTreatmentRepo{options: []models.TreatmentOption{
		{ID: "t1", Name: "Teeth Cleaning", Slots: []string{"9am", "10am", "11am"}, Price: 80},
		{ID: "t2", Name: "Oral Surgery", Slots: []string{"1pm", "2pm"}, Price: 300},
	}}
	return &DefaultBookingService{TreatmentRepo: catalog, Repo: ledger}, ledger
}
