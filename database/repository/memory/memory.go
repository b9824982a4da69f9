// Package memory provides in-memory repository implementations with the
// same atomicity contract as the Mongo ones. They back the test suite and
// store-free local runs; the mutex is held only across the check-and-write
// critical section, never across external I/O.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"roomly/models"
)

// RoomRepo is an in-memory RoomRepository.
type RoomRepo struct {
	mu    sync.RWMutex
	rooms map[string]models.Room
}

// NewRoomRepo builds an in-memory catalog seeded with the given rooms.
func NewRoomRepo(rooms ...models.Room) *RoomRepo {
	r := &RoomRepo{rooms: make(map[string]models.Room)}
	for _, room := range rooms {
		r.rooms[room.RoomNumber] = room
	}
	return r
}

func (r *RoomRepo) List(ctx context.Context) ([]models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (r *RoomRepo) GetByNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[roomNumber]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *RoomRepo) Create(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rooms[room.RoomNumber]; exists {
		return fmt.Errorf("room %s already exists", room.RoomNumber)
	}
	r.rooms[room.RoomNumber] = *room
	return nil
}

func (r *RoomRepo) Update(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rooms[room.RoomNumber]; !exists {
		return fmt.Errorf("room %s not found", room.RoomNumber)
	}
	r.rooms[room.RoomNumber] = *room
	return nil
}

func (r *RoomRepo) Delete(ctx context.Context, roomNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rooms[roomNumber]; !exists {
		return fmt.Errorf("room %s not found", roomNumber)
	}
	delete(r.rooms, roomNumber)
	return nil
}

// ReservationRepo is an in-memory ReservationRepository.
type ReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]models.Reservation
}

// NewReservationRepo builds an empty in-memory reservation store.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{reservations: make(map[string]models.Reservation)}
}

func (r *ReservationRepo) hasOverlapLocked(roomNumber string, window models.TimeWindow, excludeID string) bool {
	for _, res := range r.reservations {
		if res.RoomNumber != roomNumber || res.Status != models.StatusConfirmed {
			continue
		}
		if excludeID != "" && res.ID == excludeID {
			continue
		}
		if res.Window.Overlaps(window) {
			return true
		}
	}
	return false
}

func (r *ReservationRepo) CreateIfAvailable(ctx context.Context, res *models.Reservation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasOverlapLocked(res.RoomNumber, res.Window, "") {
		return false, nil
	}
	r.reservations[res.ID] = *res
	return true, nil
}

func (r *ReservationRepo) UpdateIfAvailable(ctx context.Context, res *models.Reservation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reservations[res.ID]; !ok {
		return false, fmt.Errorf("reservation %s not found", res.ID)
	}
	if r.hasOverlapLocked(res.RoomNumber, res.Window, res.ID) {
		return false, nil
	}
	r.reservations[res.ID] = *res
	return true, nil
}

func (r *ReservationRepo) Update(ctx context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reservations[res.ID]; !ok {
		return fmt.Errorf("reservation %s not found", res.ID)
	}
	r.reservations[res.ID] = *res
	return nil
}

func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (r *ReservationRepo) FindOverlapping(ctx context.Context, roomNumber string, window models.TimeWindow, excludeID string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.RoomNumber != roomNumber || res.Status != models.StatusConfirmed {
			continue
		}
		if excludeID != "" && res.ID == excludeID {
			continue
		}
		if res.Window.Overlaps(window) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *ReservationRepo) ListByRoomAndWindow(ctx context.Context, roomNumber string, from, to time.Time) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := models.TimeWindow{Start: from, End: to}
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.RoomNumber != roomNumber || res.Status != models.StatusConfirmed {
			continue
		}
		if res.Window.Overlaps(span) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Window.Start.Before(out[j].Window.Start) })
	return out, nil
}

func (r *ReservationRepo) ListByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.RequesterEmail == email {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
