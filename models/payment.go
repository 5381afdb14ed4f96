package models

import "time"

// Payment records one settled payment confirmation. It holds a weak reference
// to the booking it settles and is append-only: it is inserted in the same
// transaction that marks the booking paid, and never updated afterwards.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentRequest is the client payload reconciling an out-of-band payment
// confirmation with its booking.
type PaymentRequest struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
}
