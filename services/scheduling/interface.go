package scheduling

import (
	"context"

	"roomly/models"
)

// AvailabilityEngine answers whether a room is free during a window and
// produces the reserved-slot views for display.
type AvailabilityEngine interface {
	// IsAvailable reports whether no confirmed reservation on the room
	// overlaps the window. excludeID, when non-empty, names a reservation
	// to ignore (an update re-validating against its own record).
	IsAvailable(ctx context.Context, roomNumber string, window models.TimeWindow, excludeID string) (bool, error)
	// ReservedSlots returns the confirmed windows on the room for the
	// given date ("2006-01-02"), sorted by start time.
	ReservedSlots(ctx context.Context, roomNumber, date string) ([]models.ReservedSlot, error)
	// DaySchedule annotates the fixed two-hour display grid for the date.
	DaySchedule(ctx context.Context, roomNumber, date string) (*models.DaySchedule, error)
}

// ReservationLedger owns the reservation state machine and the no-overlap
// invariant for confirmed reservations.
type ReservationLedger interface {
	Create(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)
	Update(ctx context.Context, id string, patch models.ReservationPatch) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
	ListByEmail(ctx context.Context, email string) ([]models.Reservation, error)
}
