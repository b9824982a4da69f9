package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomly/database/repository/memory"
	"roomly/models"
)

func testRoom(number string, capacity int) models.Room {
	return models.Room{
		RoomNumber: number,
		Floor:      1,
		RoomType:   models.RoomTypeStudyRoom,
		Capacity:   capacity,
		Area:       20,
	}
}

func mustCreate(t *testing.T, repo *memory.ReservationRepo, res models.Reservation) {
	t.Helper()
	ok, err := repo.CreateIfAvailable(context.Background(), &res)
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	if !ok {
		t.Fatalf("seed reservation conflicted unexpectedly")
	}
}

func dayWindow(day time.Time, startHour, startMin, endHour, endMin int) models.TimeWindow {
	return models.TimeWindow{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestIsAvailable(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	resRepo := memory.NewReservationRepo()
	roomRepo := memory.NewRoomRepo(testRoom("101", 10))
	engine := &DefaultAvailabilityEngine{ReservationRepo: resRepo, RoomRepo: roomRepo}

	// Existing confirmed reservation 09:30–10:30.
	mustCreate(t, resRepo, models.Reservation{
		ID:         "existing",
		RoomNumber: "101",
		Status:     models.StatusConfirmed,
		Window:     dayWindow(day, 9, 30, 10, 30),
	})

	tests := []struct {
		name   string
		window models.TimeWindow
		want   bool
	}{
		{"overlap on the left", dayWindow(day, 9, 0, 10, 0), false},
		{"overlap on the right", dayWindow(day, 10, 0, 11, 0), false},
		{"contains existing", dayWindow(day, 9, 0, 11, 0), false},
		{"contained by existing", dayWindow(day, 9, 45, 10, 15), false},
		{"abuts end exactly", dayWindow(day, 10, 30, 11, 30), true},
		{"abuts start exactly", dayWindow(day, 8, 30, 9, 30), true},
		{"fully clear", dayWindow(day, 14, 0, 15, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.IsAvailable(context.Background(), "101", tt.window, "")
			if err != nil {
				t.Fatalf("IsAvailable: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAvailable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAvailableExcludesOwnReservation(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	resRepo := memory.NewReservationRepo()
	engine := &DefaultAvailabilityEngine{ReservationRepo: resRepo}

	mustCreate(t, resRepo, models.Reservation{
		ID:         "mine",
		RoomNumber: "101",
		Status:     models.StatusConfirmed,
		Window:     dayWindow(day, 9, 0, 10, 0),
	})

	// Re-validating the same window for an update must not conflict with
	// the reservation's own record.
	got, err := engine.IsAvailable(context.Background(), "101", dayWindow(day, 9, 0, 10, 0), "mine")
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if !got {
		t.Error("reservation conflicts with itself when excluded")
	}

	got, err = engine.IsAvailable(context.Background(), "101", dayWindow(day, 9, 0, 10, 0), "")
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if got {
		t.Error("expected conflict without exclusion")
	}
}

func TestIsAvailableRejectsDegenerateWindow(t *testing.T) {
	engine := &DefaultAvailabilityEngine{ReservationRepo: memory.NewReservationRepo()}
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	_, err := engine.IsAvailable(context.Background(), "101", dayWindow(day, 10, 0, 10, 0), "")
	if err == nil {
		t.Fatal("zero-duration window accepted")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestReservedSlots(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	resRepo := memory.NewReservationRepo()
	engine := &DefaultAvailabilityEngine{ReservationRepo: resRepo}

	// Seed out of order; expect sorted output.
	mustCreate(t, resRepo, models.Reservation{
		ID: "b", RoomNumber: "101", Status: models.StatusConfirmed,
		Window: dayWindow(day, 14, 0, 15, 0),
	})
	mustCreate(t, resRepo, models.Reservation{
		ID: "a", RoomNumber: "101", Status: models.StatusConfirmed,
		Window: dayWindow(day, 9, 0, 10, 30),
	})
	// A malformed (zero-duration) stored window must be skipped, not
	// surfaced as corrupt display data.
	mustCreate(t, resRepo, models.Reservation{
		ID: "broken", RoomNumber: "101", Status: models.StatusConfirmed,
		Window: dayWindow(day, 16, 0, 16, 0),
	})
	// A cancelled reservation must not show up.
	if err := resRepo.Update(context.Background(), &models.Reservation{
		ID: "b", RoomNumber: "101", Status: models.StatusCancelled,
		Window: dayWindow(day, 14, 0, 15, 0),
	}); err != nil {
		t.Fatalf("cancel seed: %v", err)
	}

	slots, err := engine.ReservedSlots(context.Background(), "101", "2025-01-01")
	if err != nil {
		t.Fatalf("ReservedSlots: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	if slots[0].Label != "09:00–10:30" {
		t.Errorf("slot label = %q", slots[0].Label)
	}
}

func TestReservedSlotsRejectsBadDate(t *testing.T) {
	engine := &DefaultAvailabilityEngine{ReservationRepo: memory.NewReservationRepo()}
	if _, err := engine.ReservedSlots(context.Background(), "101", "01-2025-01"); err == nil {
		t.Fatal("malformed date accepted")
	}
}

func TestDaySchedule(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	resRepo := memory.NewReservationRepo()
	roomRepo := memory.NewRoomRepo(testRoom("101", 10))
	engine := &DefaultAvailabilityEngine{ReservationRepo: resRepo, RoomRepo: roomRepo}

	// Occupy 09:00–11:00: overlaps the 08:00–10:00 and 10:00–12:00 cells.
	mustCreate(t, resRepo, models.Reservation{
		ID: "x", RoomNumber: "101", Status: models.StatusConfirmed,
		Window: dayWindow(day, 9, 0, 11, 0),
	})

	schedule, err := engine.DaySchedule(context.Background(), "101", "2025-01-01")
	if err != nil {
		t.Fatalf("DaySchedule: %v", err)
	}
	if len(schedule.Periods) != 6 {
		t.Fatalf("got %d periods, want 6", len(schedule.Periods))
	}
	wantAvailable := []bool{false, false, true, true, true, true}
	for i, p := range schedule.Periods {
		if p.Available != wantAvailable[i] {
			t.Errorf("period %s available = %v, want %v", p.Label, p.Available, wantAvailable[i])
		}
	}

	if _, err := engine.DaySchedule(context.Background(), "999", "2025-01-01"); err == nil {
		t.Fatal("unknown room accepted")
	}
}
