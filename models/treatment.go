package models

// TreatmentOption is the static daily template for one treatment: the full
// set of bookable slot labels and the current price. Templates are seeded
// administratively and never mutated by the booking flow.
type TreatmentOption struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"` // unique key, referenced by bookings
	Slots []string `bson:"slots" json:"slots"`
	Price float64  `bson:"price" json:"price"`
}

// TreatmentName is the projection used by the doctor-roster form, which only
// needs the treatment names for its specialty dropdown.
type TreatmentName struct {
	Name string `bson:"name" json:"name"`
}
