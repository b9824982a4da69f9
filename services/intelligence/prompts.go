package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"roomly/models"
)

// extractInstruction is the fixed instruction template sent with every
// extraction request. The oracle is told to emit a single JSON object;
// the extractor still expects prose or markdown fences around the payload
// because models add them anyway.
const extractInstruction = `You convert a room booking request into a JSON object.
Return a single JSON object and nothing else, with any of these optional fields:
  capacity (integer), roomType ("classroom" or "study_room"),
  hasProjector, hasAircon, hasMicrophone, hasCamera, isQuiet, hasNaturalLight (booleans),
  date ("YYYY-MM-DD"), startTime ("HH:MM"), endTime ("HH:MM"), purpose (string).
Only include a field if the user stated it explicitly.
If the text is not a room booking request, return {"outOfDomain": true, "reason": "<short reason>"}.

User request:
%s`

const rankInstruction = `You score meeting rooms against a requirement set.
Return a single JSON array and nothing else. Each element:
  {"roomNumber": "<id>", "score": <integer 1-100>, "reasons": ["<short reason>", ...]}
Score only rooms from the candidate list; reasons must not be empty.

Requirements:
%s

Candidates:
%s`

const confirmInstruction = `Write one short, friendly sentence confirming this room booking.
Plain text only, no markdown.

Room %s (%s, capacity %d), %s from %s.`

func buildExtractPrompt(freeText string) string {
	return fmt.Sprintf(extractInstruction, freeText)
}

func buildRankPrompt(reqs models.RoomRequirements, rooms []models.Room) string {
	reqJSON, _ := json.Marshal(reqs)
	var sb strings.Builder
	for _, r := range rooms {
		line, _ := json.Marshal(r)
		sb.Write(line)
		sb.WriteByte('\n')
	}
	return fmt.Sprintf(rankInstruction, reqJSON, sb.String())
}

func buildConfirmPrompt(res models.Reservation, room models.Room) string {
	return fmt.Sprintf(confirmInstruction,
		room.RoomNumber, room.RoomType, room.Capacity,
		res.Window.Start.Format("2006-01-02"), res.Window.ClockLabel())
}
