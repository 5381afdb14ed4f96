package models

import "time"

// Booking is one confirmed appointment in the ledger.
//
// The triple (appointmentDate, email, treatment) is unique among bookings, as
// is (appointmentDate, treatment, slot); both are enforced by unique indexes
// on the bookings collection. A booking is created unpaid and is mutated only
// by payment reconciliation, which sets Paid and TransactionID exactly once.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Email           string    `bson:"email" json:"email"`                     // patient identity
	Treatment       string    `bson:"treatment" json:"treatment"`             // TreatmentOption.Name
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"` // "2006-01-02", day granularity
	Slot            string    `bson:"slot" json:"slot"`
	Price           float64   `bson:"price" json:"price"` // snapshot at booking time
	Paid            bool      `bson:"paid" json:"paid"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingCandidate is the client payload admitted by booking admission
// control.
type BookingCandidate struct {
	Email           string  `json:"email" binding:"required"`
	Treatment       string  `json:"treatment" binding:"required"`
	AppointmentDate string  `json:"appointmentDate" binding:"required"`
	Slot            string  `json:"slot" binding:"required"`
	Price           float64 `json:"price"`
}
