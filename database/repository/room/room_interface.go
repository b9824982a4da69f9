package roomRepo

import (
	"context"

	"roomly/models"
)

// RoomRepository defines data access for the room catalog. The scheduling
// core is read-only against it; the mutating methods serve catalog
// administration.
type RoomRepository interface {
	// List returns the full catalog snapshot.
	List(ctx context.Context) ([]models.Room, error)
	// GetByNumber retrieves a room by its room number. Returns (nil, nil)
	// when no such room exists.
	GetByNumber(ctx context.Context, roomNumber string) (*models.Room, error)
	// Create persists a new room.
	Create(ctx context.Context, room *models.Room) error
	// Update replaces an existing room snapshot.
	Update(ctx context.Context, room *models.Room) error
	// Delete removes a room from the catalog.
	Delete(ctx context.Context, roomNumber string) error
}
