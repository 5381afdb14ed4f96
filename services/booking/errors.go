package booking

import (
	"errors"
	"fmt"
)

// Admission error codes.
const (
	CodeDuplicateBooking = "duplicateBooking"
	CodeSlotTaken        = "slotTaken"
	CodeInvalidBooking   = "invalidBooking"
)

// AdmissionError is a booking rejection with a message safe to show the
// patient.
type AdmissionError struct {
	Code    string
	Message string
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDuplicateBookingError reports that the patient already holds a booking
// for the treatment on the given date.
func NewDuplicateBookingError(date string) error {
	return &AdmissionError{
		Code:    CodeDuplicateBooking,
		Message: fmt.Sprintf("You already have a booking on %s", date),
	}
}

// NewSlotTakenError reports that another patient got the slot first.
func NewSlotTakenError(slot, date string) error {
	return &AdmissionError{
		Code:    CodeSlotTaken,
		Message: fmt.Sprintf("The %s slot on %s has just been booked, please pick another", slot, date),
	}
}

// NewInvalidBookingError reports a malformed candidate.
func NewInvalidBookingError(msg string) error {
	return &AdmissionError{
		Code:    CodeInvalidBooking,
		Message: msg,
	}
}

// Lookup and reconciliation errors.
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrTreatmentNotFound = errors.New("treatment not found")
	ErrAlreadyPaid       = errors.New("booking already paid")
)
