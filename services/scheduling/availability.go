package scheduling

import (
	"context"
	"fmt"
	"time"

	reservationRepo "roomly/database/repository/reservation"
	roomRepo "roomly/database/repository/room"
	"roomly/models"
	"roomly/utils"

	"go.uber.org/zap"
)

// Display grid: six two-hour periods, 08:00 through 20:00.
const (
	gridStartHour  = 8
	gridEndHour    = 20
	gridPeriodHour = 2
)

// DefaultAvailabilityEngine implements AvailabilityEngine against the
// reservation store.
type DefaultAvailabilityEngine struct {
	ReservationRepo reservationRepo.ReservationRepository
	RoomRepo        roomRepo.RoomRepository
}

// IsAvailable reports whether the window is free on the room. Degenerate
// windows are rejected here so corrupt input never reaches the overlap
// query.
func (e *DefaultAvailabilityEngine) IsAvailable(ctx context.Context, roomNumber string, window models.TimeWindow, excludeID string) (bool, error) {
	if err := window.Validate(); err != nil {
		return false, NewValidationError("invalid window: %v", err)
	}

	overlapping, err := e.ReservationRepo.FindOverlapping(ctx, roomNumber, window, excludeID)
	if err != nil {
		return false, fmt.Errorf("availability check for room %s failed: %w", roomNumber, err)
	}
	return len(overlapping) == 0, nil
}

// ReservedSlots returns the confirmed windows on the room intersecting the
// given date, sorted by start, as display-ready clock intervals. Malformed
// stored windows are skipped rather than propagated.
func (e *DefaultAvailabilityEngine) ReservedSlots(ctx context.Context, roomNumber, date string) ([]models.ReservedSlot, error) {
	dayStart, dayEnd, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	reservations, err := e.ReservationRepo.ListByRoomAndWindow(ctx, roomNumber, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations for room %s on %s: %w", roomNumber, date, err)
	}

	slots := make([]models.ReservedSlot, 0, len(reservations))
	for _, res := range reservations {
		if res.Window.Validate() != nil {
			utils.GetLogger().Warn("skipping reservation with malformed window",
				zap.String("reservationID", res.ID), zap.String("room", roomNumber))
			continue
		}
		slots = append(slots, models.ReservedSlot{
			Window: res.Window,
			Label:  res.Window.ClockLabel(),
		})
	}
	return slots, nil
}

// DaySchedule annotates each two-hour grid period as available or taken.
func (e *DefaultAvailabilityEngine) DaySchedule(ctx context.Context, roomNumber, date string) (*models.DaySchedule, error) {
	room, err := e.RoomRepo.GetByNumber(ctx, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", roomNumber, err)
	}
	if room == nil {
		return nil, &NotFoundError{Kind: "room", ID: roomNumber}
	}

	dayStart, _, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	schedule := &models.DaySchedule{RoomNumber: roomNumber, Date: date}
	for hour := gridStartHour; hour < gridEndHour; hour += gridPeriodHour {
		window := models.TimeWindow{
			Start: dayStart.Add(time.Duration(hour) * time.Hour),
			End:   dayStart.Add(time.Duration(hour+gridPeriodHour) * time.Hour),
		}
		free, err := e.IsAvailable(ctx, roomNumber, window, "")
		if err != nil {
			return nil, err
		}
		schedule.Periods = append(schedule.Periods, models.SchedulePeriod{
			Label:     window.ClockLabel(),
			StartHour: hour,
			EndHour:   hour + gridPeriodHour,
			Available: free,
		})
	}
	return schedule, nil
}

// dayBounds converts a "2006-01-02" date into its local [midnight,
// midnight+24h) window.
func dayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError("invalid date %q, expected YYYY-MM-DD", date)
	}
	return day, day.AddDate(0, 0, 1), nil
}
