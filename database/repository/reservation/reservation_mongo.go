package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new ReservationRepository backed by the
// given database.
func NewMongoReservationRepo(db *mongo.Database) ReservationRepository {
	repo := &MongoReservationRepo{coll: db.Collection("reservations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reservation indexes: %v\n", err)
	}
	return repo
}

// opContext derives a bounded context for a single Mongo operation.
func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "room_number", Value: 1},
			{Key: "status", Value: 1},
			{Key: "window.start", Value: 1},
		}},
		{Keys: bson.D{{Key: "requester_email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter selects confirmed reservations on roomNumber whose
// half-open windows intersect the given one. Overlap under half-open
// semantics: stored.start < window.end AND stored.end > window.start.
func overlapFilter(roomNumber string, window models.TimeWindow, excludeID string) bson.M {
	filter := bson.M{
		"room_number":  roomNumber,
		"status":       models.StatusConfirmed,
		"window.start": bson.M{"$lt": window.End},
		"window.end":   bson.M{"$gt": window.Start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}
