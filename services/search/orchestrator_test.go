package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomly/database/repository/memory"
	"roomly/models"
	"roomly/services/scheduling"
)

// countingRoomRepo records catalog reads so tests can assert that rejected
// input never touches the catalog.
type countingRoomRepo struct {
	*memory.RoomRepo
	listCalls int
}

func (c *countingRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	c.listCalls++
	return c.RoomRepo.List(ctx)
}

func newTestOrchestrator(oracle *stubOracle, rooms ...models.Room) (*DefaultOrchestrator, *countingRoomRepo, *memory.ReservationRepo) {
	catalog := &countingRoomRepo{RoomRepo: memory.NewRoomRepo(rooms...)}
	reservations := memory.NewReservationRepo()
	return &DefaultOrchestrator{
		Extractor:    newTestExtractor(oracle),
		RoomRepo:     catalog,
		Availability: &scheduling.DefaultAvailabilityEngine{ReservationRepo: reservations, RoomRepo: catalog},
	}, catalog, reservations
}

func TestSearchRanksByRequirements(t *testing.T) {
	roomA := models.Room{RoomNumber: "A", RoomType: models.RoomTypeClassroom, Capacity: 10, HasProjector: true}
	roomB := models.Room{RoomNumber: "B", RoomType: models.RoomTypeClassroom, Capacity: 4, HasAircon: true}
	oracle := &stubOracle{extractResponse: `{"capacity": 8, "hasProjector": true}`}
	o, _, _ := newTestOrchestrator(oracle, roomA, roomB)

	result, err := o.Search(context.Background(), "a projector room for 8 people")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Candidates) != 1 || result.Candidates[0].Room.RoomNumber != "A" {
		t.Fatalf("candidates = %v, want only room A", candidateNumbers(result.Candidates))
	}
	if result.Message != "Found 1 room matching your request." {
		t.Errorf("message = %q", result.Message)
	}
	if result.Requirements.Capacity == nil || *result.Requirements.Capacity != 8 {
		t.Error("extracted requirements not echoed back")
	}
}

func TestSearchFiltersOutBookedRooms(t *testing.T) {
	roomA := models.Room{RoomNumber: "A", Capacity: 4}
	roomB := models.Room{RoomNumber: "B", Capacity: 4}
	oracle := &stubOracle{
		extractResponse: `{"capacity": 2, "date": "2025-01-05", "startTime": "09:00", "endTime": "10:00"}`,
	}
	o, _, reservations := newTestOrchestrator(oracle, roomA, roomB)

	booked := models.Reservation{
		ID:             "res-1",
		RoomNumber:     "A",
		RequesterName:  "Dana",
		RequesterEmail: "dana@example.com",
		Window: models.TimeWindow{
			Start: time.Date(2025, 1, 5, 9, 0, 0, 0, time.Local),
			End:   time.Date(2025, 1, 5, 10, 0, 0, 0, time.Local),
		},
		Status:    models.StatusConfirmed,
		CreatedAt: extractorNow,
	}
	if ok, err := reservations.CreateIfAvailable(context.Background(), &booked); err != nil || !ok {
		t.Fatalf("seed reservation: ok=%v err=%v", ok, err)
	}

	result, err := o.Search(context.Background(), "two of us, sunday 9 to 10")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got := candidateNumbers(result.Candidates); !equalStrings(got, []string{"B"}) {
		t.Errorf("candidates = %v, want [B]", got)
	}
}

func TestSearchRejectedInputNeverTouchesCatalog(t *testing.T) {
	oracle := &stubOracle{extractResponse: `{"outOfDomain": true, "reason": "not about rooms"}`}
	o, catalog, _ := newTestOrchestrator(oracle, models.Room{RoomNumber: "A", Capacity: 4})

	_, err := o.Search(context.Background(), "what is the meaning of life")
	var rejection *DomainRejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected DomainRejectionError, got %v", err)
	}
	if catalog.listCalls != 0 {
		t.Errorf("catalog read %d times for rejected input", catalog.listCalls)
	}
}

func TestSearchNoMatches(t *testing.T) {
	oracle := &stubOracle{extractResponse: `{"capacity": 100}`}
	o, _, _ := newTestOrchestrator(oracle, models.Room{RoomNumber: "A", Capacity: 4})

	result, err := o.Search(context.Background(), "a hall for a hundred people")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Candidates) != 0 {
		t.Fatalf("candidates = %v, want none", candidateNumbers(result.Candidates))
	}
	if result.Message != "No rooms match your request. Consider relaxing some constraints." {
		t.Errorf("message = %q", result.Message)
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	oracle := &stubOracle{extractResponse: `{"capacity": 2}`}
	o, _, _ := newTestOrchestrator(oracle)

	_, err := o.Search(context.Background(), "anything for two people")
	if err == nil {
		t.Fatal("expected an error for an empty catalog")
	}
}

func TestSearchOracleReRanking(t *testing.T) {
	roomA := models.Room{RoomNumber: "A", Capacity: 4, HasProjector: true}
	roomB := models.Room{RoomNumber: "B", Capacity: 4}

	t.Run("valid re-ranking applied", func(t *testing.T) {
		oracle := &stubOracle{
			extractResponse: `{"capacity": 2}`,
			rankResponse:    `[{"roomNumber": "B", "score": 95, "reasons": ["perfect fit"]}, {"roomNumber": "A", "score": 70, "reasons": ["fine"]}]`,
		}
		o, _, _ := newTestOrchestrator(oracle, roomA, roomB)
		o.Oracle = oracle

		result, err := o.Search(context.Background(), "somewhere for the two of us")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if got := candidateNumbers(result.Candidates); !equalStrings(got, []string{"B", "A"}) {
			t.Errorf("order = %v, want [B A]", got)
		}
	})

	t.Run("ranking failure keeps deterministic order", func(t *testing.T) {
		oracle := &stubOracle{
			extractResponse: `{"capacity": 2}`,
			rankErr:         errors.New("oracle down"),
		}
		o, _, _ := newTestOrchestrator(oracle, roomA, roomB)
		o.Oracle = oracle

		result, err := o.Search(context.Background(), "somewhere for the two of us")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		// A carries an extra amenity, so it outscores B deterministically.
		if got := candidateNumbers(result.Candidates); !equalStrings(got, []string{"A", "B"}) {
			t.Errorf("order = %v, want [A B]", got)
		}
	})
}
