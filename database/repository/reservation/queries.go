package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	return &res, nil
}

// FindOverlapping returns confirmed reservations on the room that overlap
// the given window, excluding excludeID when non-empty.
func (r *MongoReservationRepo) FindOverlapping(ctx context.Context, roomNumber string, window models.TimeWindow, excludeID string) ([]models.Reservation, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, overlapFilter(roomNumber, window, excludeID))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping reservations for room %s: %w", roomNumber, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping reservations: %w", err)
	}
	return out, nil
}

// ListByRoomAndWindow returns confirmed reservations on the room
// intersecting [from, to), sorted by start time ascending.
func (r *MongoReservationRepo) ListByRoomAndWindow(ctx context.Context, roomNumber string, from, to time.Time) ([]models.Reservation, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	filter := bson.M{
		"room_number":  roomNumber,
		"status":       models.StatusConfirmed,
		"window.start": bson.M{"$lt": to},
		"window.end":   bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "window.start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for room %s: %w", roomNumber, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

// ListByEmail returns all reservations for a requester email, newest first.
func (r *MongoReservationRepo) ListByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"requester_email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

// Update replaces a reservation document without an availability re-check.
func (r *MongoReservationRepo) Update(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": res.ID}, res)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found", res.ID)
	}
	return nil
}
