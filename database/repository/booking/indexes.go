package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index names, matched against duplicate-key errors in Insert.
const (
	idxPatientDateTreatment = "unique_patient_date_treatment"
	idxTreatmentDateSlot    = "unique_treatment_date_slot"
)

// EnsureIndexes creates the necessary indexes on the bookings and payments
// collections. The two unique compound indexes carry the ledger's
// correctness: a patient holds at most one booking per treatment per date,
// and a slot is sold at most once per treatment per date.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{
				{Key: "appointmentDate", Value: 1},
				{Key: "email", Value: 1},
				{Key: "treatment", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(idxPatientDateTreatment),
		},
		{
			Keys: bson.D{
				{Key: "appointmentDate", Value: 1},
				{Key: "treatment", Value: 1},
				{Key: "slot", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(idxTreatmentDateSlot),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}
	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	paymentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "bookingId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_booking_id"),
		},
	}
	if _, err := repo.paymentColl.Indexes().CreateMany(ctx, paymentIndexes); err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}
