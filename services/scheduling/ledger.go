package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	reservationRepo "roomly/database/repository/reservation"
	roomRepo "roomly/database/repository/room"
	"roomly/models"
	"roomly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues a pre-start reminder for a reservation.
// Failures are logged, never surfaced: a booking must not fail because the
// reminder queue is down.
type ReminderScheduler interface {
	ScheduleReminder(res models.Reservation) error
}

// DefaultReservationLedger implements ReservationLedger.
type DefaultReservationLedger struct {
	ReservationRepo reservationRepo.ReservationRepository
	RoomRepo        roomRepo.RoomRepository
	Reminders       ReminderScheduler // optional
	Now             func() time.Time  // injectable clock for tests
}

func (l *DefaultReservationLedger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Create validates the draft, then runs the conflict check and insert as
// one atomic unit in the repository. Exactly one of N concurrent callers
// with overlapping windows succeeds.
func (l *DefaultReservationLedger) Create(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if err := draft.Window.Validate(); err != nil {
		return nil, NewValidationError("%v", err)
	}
	if draft.Window.Start.Before(l.now()) {
		return nil, NewValidationError("reservation window starts in the past")
	}

	room, err := l.RoomRepo.GetByNumber(ctx, draft.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", draft.RoomNumber, err)
	}
	if room == nil {
		return nil, &NotFoundError{Kind: "room", ID: draft.RoomNumber}
	}

	res := &models.Reservation{
		ID:             uuid.New().String(),
		RoomNumber:     draft.RoomNumber,
		RequesterName:  strings.TrimSpace(draft.RequesterName),
		RequesterEmail: strings.TrimSpace(draft.RequesterEmail),
		Window:         draft.Window,
		Status:         models.StatusConfirmed,
		Purpose:        strings.TrimSpace(draft.Purpose),
		CreatedAt:      l.now(),
	}

	ok, err := l.ReservationRepo.CreateIfAvailable(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	if !ok {
		return nil, &ConflictError{RoomNumber: draft.RoomNumber, Window: draft.Window.ClockLabel()}
	}

	if l.Reminders != nil {
		if err := l.Reminders.ScheduleReminder(*res); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}

	return res, nil
}

// Update applies the patch; a changed window re-runs the availability
// check excluding the reservation's own id, atomically with the write.
func (l *DefaultReservationLedger) Update(ctx context.Context, id string, patch models.ReservationPatch) (*models.Reservation, error) {
	res, err := l.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	if res == nil {
		return nil, &NotFoundError{Kind: "reservation", ID: id}
	}
	if res.Status != models.StatusConfirmed {
		return nil, NewValidationError("only confirmed reservations can be updated")
	}

	if patch.RequesterName != nil {
		res.RequesterName = strings.TrimSpace(*patch.RequesterName)
	}
	if patch.RequesterEmail != nil {
		res.RequesterEmail = strings.TrimSpace(*patch.RequesterEmail)
	}
	if patch.Purpose != nil {
		res.Purpose = strings.TrimSpace(*patch.Purpose)
	}

	windowChanged := false
	if patch.Window != nil {
		if err := patch.Window.Validate(); err != nil {
			return nil, NewValidationError("%v", err)
		}
		if patch.Window.Start.Before(l.now()) {
			return nil, NewValidationError("reservation window starts in the past")
		}
		windowChanged = !patch.Window.Start.Equal(res.Window.Start) || !patch.Window.End.Equal(res.Window.End)
		res.Window = *patch.Window
	}

	if windowChanged {
		ok, err := l.ReservationRepo.UpdateIfAvailable(ctx, res)
		if err != nil {
			return nil, fmt.Errorf("failed to update reservation %s: %w", id, err)
		}
		if !ok {
			return nil, &ConflictError{RoomNumber: res.RoomNumber, Window: res.Window.ClockLabel()}
		}
		return res, nil
	}

	if err := l.ReservationRepo.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to update reservation %s: %w", id, err)
	}
	return res, nil
}

// Cancel moves confirmed → cancelled. Cancelling an already-cancelled
// reservation fails with AlreadyCancelledError rather than succeeding
// silently.
func (l *DefaultReservationLedger) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := l.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	if res == nil {
		return nil, &NotFoundError{Kind: "reservation", ID: id}
	}
	if res.Status == models.StatusCancelled {
		return nil, &AlreadyCancelledError{ID: id}
	}

	res.Status = models.StatusCancelled
	if err := l.ReservationRepo.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to cancel reservation %s: %w", id, err)
	}
	return res, nil
}

// Get retrieves a reservation by id.
func (l *DefaultReservationLedger) Get(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := l.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	if res == nil {
		return nil, &NotFoundError{Kind: "reservation", ID: id}
	}
	return res, nil
}

// ListByEmail returns the requester's reservations, newest first.
func (l *DefaultReservationLedger) ListByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, NewValidationError("email is required")
	}
	out, err := l.ReservationRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for %s: %w", email, err)
	}
	return out, nil
}

func validateDraft(draft models.ReservationDraft) error {
	if strings.TrimSpace(draft.RoomNumber) == "" {
		return NewValidationError("room number is required")
	}
	if strings.TrimSpace(draft.RequesterName) == "" {
		return NewValidationError("requester name is required")
	}
	if strings.TrimSpace(draft.RequesterEmail) == "" {
		return NewValidationError("requester email is required")
	}
	return nil
}
