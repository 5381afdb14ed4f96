package bookingRepo

import (
	"context"
	"fmt"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordPayment links a payment confirmation to its booking in a single
// transaction: the booking is conditionally marked paid, then the payment
// record is inserted. The update filter requires paid == false, so a repeat
// confirmation cannot regress the flag or replace the transaction id, and an
// aborted transaction leaves no orphaned payment behind.
func (repo *MongoBookingRepo) RecordPayment(ctx context.Context, payment *models.Payment) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": payment.BookingID, "paid": false}
		update := bson.M{"$set": bson.M{
			"paid":          true,
			"transactionId": payment.TransactionID,
		}}
		res, err := repo.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("mark booking paid failed: %w", err)
		}
		if res.MatchedCount == 0 {
			// Distinguish a missing booking from one that is already paid.
			err := repo.bookingColl.FindOne(sc, bson.M{"id": payment.BookingID}).Err()
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			if err != nil {
				return fmt.Errorf("error fetching booking %s: %w", payment.BookingID, err)
			}
			return ErrAlreadyPaid
		}

		if _, err := repo.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrNotFound || err == ErrAlreadyPaid {
			return err
		}
		return fmt.Errorf("payment transaction failed: %w", err)
	}

	return nil
}
