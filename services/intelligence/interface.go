package ai

import (
	"context"

	"roomly/models"
)

// Oracle is the capability interface for the external natural-language
// understanding service. Implementations return raw text blobs; callers
// own parsing and validation and must treat the output as untrusted.
// Tests inject a deterministic stub; production wires the Gemini client.
type Oracle interface {
	// ExtractRequirements asks the oracle to turn free text into a
	// structured requirements payload.
	ExtractRequirements(ctx context.Context, freeText string) (string, error)
	// RankCandidates asks the oracle to score already-filtered rooms
	// against the requirements.
	RankCandidates(ctx context.Context, reqs models.RoomRequirements, rooms []models.Room) (string, error)
	// ConfirmationMessage asks the oracle for a short confirmation blurb
	// for a booked reservation.
	ConfirmationMessage(ctx context.Context, res models.Reservation, room models.Room) (string, error)
}
