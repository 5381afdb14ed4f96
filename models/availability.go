package models

// TreatmentAvailability is the derived, read-only availability view for one
// treatment on one date: the template slots minus the slots already consumed
// by bookings, in template order. It is computed per request and never
// persisted.
type TreatmentAvailability struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Slots []string `json:"slots"` // remaining slots, template order preserved
}
