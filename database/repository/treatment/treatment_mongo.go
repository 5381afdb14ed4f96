package treatmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no treatment matches the requested name.
var ErrNotFound = errors.New("treatment not found")

// MongoTreatmentRepo implements TreatmentRepository using MongoDB.
type MongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo constructs a new instance of MongoTreatmentRepo.
func NewMongoTreatmentRepo() TreatmentRepository {
	return &MongoTreatmentRepo{
		coll: database.DB().Collection("appointmentOptions"),
	}
}

// List returns every treatment option with its full slot template, sorted by
// name so the catalog order is stable across requests.
func (repo *MongoTreatmentRepo) List(ctx context.Context) ([]models.TreatmentOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("error fetching treatment options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.TreatmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("error decoding treatment options: %w", err)
	}
	return opts, nil
}

// GetByName retrieves a single treatment option by its unique name.
func (repo *MongoTreatmentRepo) GetByName(ctx context.Context, name string) (*models.TreatmentOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var opt models.TreatmentOption
	if err := repo.coll.FindOne(ctx, bson.M{"name": name}).Decode(&opt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching treatment %q: %w", name, err)
	}
	return &opt, nil
}

// ListNames returns only the treatment names, for the doctor-roster form.
func (repo *MongoTreatmentRepo) ListNames(ctx context.Context) ([]models.TreatmentName, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("error fetching treatment names: %w", err)
	}
	defer cursor.Close(ctx)

	var names []models.TreatmentName
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("error decoding treatment names: %w", err)
	}
	return names, nil
}

// Seed upserts treatment options by name. Used by the administrative seed
// tool, never by the request path.
func (repo *MongoTreatmentRepo) Seed(ctx context.Context, opts []models.TreatmentOption) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, opt := range opts {
		filter := bson.M{"name": opt.Name}
		update := bson.M{"$set": opt}
		upsert := options.Update().SetUpsert(true)
		if _, err := repo.coll.UpdateOne(ctx, filter, update, upsert); err != nil {
			return fmt.Errorf("error seeding treatment %q: %w", opt.Name, err)
		}
	}
	return nil
}
