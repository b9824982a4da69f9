package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomly/models"
)

// stubOracle is a deterministic Oracle for tests.
type stubOracle struct {
	extractResponse string
	extractErr      error
	extractDelay    time.Duration
	extractCalls    int

	rankResponse string
	rankErr      error

	confirmResponse string
	confirmErr      error
}

func (s *stubOracle) ExtractRequirements(ctx context.Context, freeText string) (string, error) {
	s.extractCalls++
	if s.extractDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.extractDelay):
		}
	}
	return s.extractResponse, s.extractErr
}

func (s *stubOracle) RankCandidates(ctx context.Context, reqs models.RoomRequirements, rooms []models.Room) (string, error) {
	return s.rankResponse, s.rankErr
}

func (s *stubOracle) ConfirmationMessage(ctx context.Context, res models.Reservation, room models.Room) (string, error) {
	return s.confirmResponse, s.confirmErr
}

var extractorNow = time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local)

func newTestExtractor(oracle *stubOracle) *RequirementExtractor {
	return &RequirementExtractor{
		Oracle:  oracle,
		Timeout: time.Second,
		Now:     func() time.Time { return extractorNow },
	}
}

func TestExtractRejectsShortInput(t *testing.T) {
	oracle := &stubOracle{}
	x := newTestExtractor(oracle)

	_, err := x.Extract(context.Background(), "hi")
	var rejection *DomainRejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected DomainRejectionError, got %v", err)
	}
	if oracle.extractCalls != 0 {
		t.Error("oracle was called for too-short input")
	}
}

func TestExtractParsesWrappedPayload(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"bare object", `{"capacity": 8, "hasProjector": true}`},
		{"markdown fenced", "```json\n{\"capacity\": 8, \"hasProjector\": true}\n```"},
		{"surrounding commentary", "Sure! Here is the extraction:\n{\"capacity\": 8, \"hasProjector\": true}\nLet me know if you need anything else."},
		{"brace inside string", `Here: {"capacity": 8, "hasProjector": true, "purpose": "planning {q3}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newTestExtractor(&stubOracle{extractResponse: tt.response})
			reqs, err := x.Extract(context.Background(), "a room with a projector for 8 people")
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if reqs.Capacity == nil || *reqs.Capacity != 8 {
				t.Error("capacity not extracted")
			}
			if reqs.HasProjector == nil || !*reqs.HasProjector {
				t.Error("projector flag not extracted")
			}
			// Absent fields stay don't-care.
			if reqs.RoomType != nil || reqs.HasAircon != nil || reqs.Date != nil {
				t.Error("absent fields were defaulted")
			}
		})
	}
}

func TestExtractFailsClosed(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantParse bool // UnparseableError rather than DomainRejectionError
	}{
		{"out of domain", `{"outOfDomain": true, "reason": "asks about the weather"}`, false},
		{"no payload at all", "I could not find any booking request here.", true},
		{"truncated payload", `{"capacity": 8`, true},
		{"malformed json", `{capacity: eight}`, true},
		{"capacity too small", `{"capacity": 0}`, false},
		{"capacity too large", `{"capacity": 1001}`, false},
		{"date in the past", `{"date": "2024-12-31"}`, false},
		{"bad date form", `{"date": "31/12/2025"}`, false},
		{"end before start", `{"startTime": "14:00", "endTime": "13:00"}`, false},
		{"end equals start", `{"startTime": "14:00", "endTime": "14:00"}`, false},
		{"unknown room type", `{"roomType": "ballroom"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newTestExtractor(&stubOracle{extractResponse: tt.response})
			_, err := x.Extract(context.Background(), "book me something tomorrow")
			if err == nil {
				t.Fatal("extraction succeeded")
			}
			if tt.wantParse {
				var unparseable *UnparseableError
				if !errors.As(err, &unparseable) {
					t.Fatalf("expected UnparseableError, got %v", err)
				}
			} else {
				var rejection *DomainRejectionError
				if !errors.As(err, &rejection) {
					t.Fatalf("expected DomainRejectionError, got %v", err)
				}
			}
		})
	}
}

func TestExtractOracleFailure(t *testing.T) {
	x := newTestExtractor(&stubOracle{extractErr: errors.New("boom")})
	_, err := x.Extract(context.Background(), "a quiet study room for two")
	var unavailable *OracleUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected OracleUnavailableError, got %v", err)
	}
}

func TestExtractOracleTimeout(t *testing.T) {
	oracle := &stubOracle{extractDelay: 200 * time.Millisecond}
	x := &RequirementExtractor{
		Oracle:  oracle,
		Timeout: 20 * time.Millisecond,
		Now:     func() time.Time { return extractorNow },
	}
	_, err := x.Extract(context.Background(), "a quiet study room for two")
	var unavailable *OracleUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected OracleUnavailableError, got %v", err)
	}
}

func TestExtractAcceptsFutureWindow(t *testing.T) {
	x := newTestExtractor(&stubOracle{
		extractResponse: `{"date": "2025-01-05", "startTime": "09:00", "endTime": "10:00"}`,
	})
	reqs, err := x.Extract(context.Background(), "next sunday morning please")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !reqs.HasFullWindow() {
		t.Fatal("full window not detected")
	}

	window, err := DeriveWindow(*reqs)
	if err != nil {
		t.Fatalf("DeriveWindow: %v", err)
	}
	want := time.Date(2025, 1, 5, 9, 0, 0, 0, time.Local)
	if !window.Start.Equal(want) {
		t.Errorf("window start = %v, want %v", window.Start, want)
	}
	if window.Duration() != time.Hour {
		t.Errorf("window duration = %v", window.Duration())
	}
}
