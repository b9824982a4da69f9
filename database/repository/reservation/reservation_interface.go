package reservationRepo

import (
	"context"
	"time"

	"roomly/models"
)

// ReservationRepository defines data access for reservation records.
//
// CreateIfAvailable and UpdateIfAvailable compose the overlap check and
// the write into one atomic unit against the store: two concurrent callers
// with overlapping windows must never both succeed.
type ReservationRepository interface {
	// CreateIfAvailable inserts the reservation iff no confirmed
	// reservation on the same room overlaps its window. Returns false
	// (and no error) when the slot is already taken.
	CreateIfAvailable(ctx context.Context, res *models.Reservation) (bool, error)
	// UpdateIfAvailable replaces the stored reservation iff no OTHER
	// confirmed reservation on the target room overlaps the new window.
	UpdateIfAvailable(ctx context.Context, res *models.Reservation) (bool, error)
	// Update replaces a reservation without re-checking availability.
	// Only valid when the window is unchanged or the status leaves
	// confirmed.
	Update(ctx context.Context, res *models.Reservation) error
	// GetByID retrieves a reservation; (nil, nil) when unknown.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// FindOverlapping returns confirmed reservations on the room whose
	// windows overlap the given one, excluding excludeID when non-empty.
	FindOverlapping(ctx context.Context, roomNumber string, window models.TimeWindow, excludeID string) ([]models.Reservation, error)
	// ListByRoomAndWindow returns confirmed reservations on the room
	// intersecting [from, to), sorted by start time.
	ListByRoomAndWindow(ctx context.Context, roomNumber string, from, to time.Time) ([]models.Reservation, error)
	// ListByEmail returns all reservations for a requester email, newest
	// first.
	ListByEmail(ctx context.Context, email string) ([]models.Reservation, error)
}
