package roomRepo

import (
	"context"
	"errors"
	"fmt"

	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns every room in the catalog, ordered by room number.
func (r *MongoRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// GetByNumber retrieves a room by its room number.
func (r *MongoRoomRepo) GetByNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"room_number": roomNumber}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", roomNumber, err)
	}
	return &room, nil
}

// Create persists a new room.
func (r *MongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room %s: %w", room.RoomNumber, err)
	}
	return nil
}

// Update replaces an existing room snapshot.
func (r *MongoRoomRepo) Update(ctx context.Context, room *models.Room) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"room_number": room.RoomNumber}, room)
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", room.RoomNumber, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("room %s not found", room.RoomNumber)
	}
	return nil
}

// Delete removes a room from the catalog.
func (r *MongoRoomRepo) Delete(ctx context.Context, roomNumber string) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"room_number": roomNumber})
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", roomNumber, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("room %s not found", roomNumber)
	}
	return nil
}
