package search

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"roomly/models"
)

// Scoring constants. The policy is deterministic and monotonic: every
// satisfied requested amenity is worth strictly more than any pile of
// unrequested extras, and totals stay inside (0, 100].
const (
	baseScore             = 40 // hard constraints (capacity, type) met
	requestedAmenityBonus = 8
	extraAmenityBonus     = 3
	capacityFitMaxBonus   = 10
)

var allAmenities = []string{
	models.AmenityProjector,
	models.AmenityAircon,
	models.AmenityMicrophone,
	models.AmenityCamera,
	models.AmenityQuiet,
	models.AmenityNaturalLight,
}

// RankRooms scores and orders candidates by soft-constraint fit. Hard
// constraints are re-checked here: a room violating one is scored 0 and
// dropped, never returned partially scored. Output is descending by
// score, ties broken by room number ascending.
func RankRooms(reqs models.RoomRequirements, candidates []models.Room) []models.RankedCandidate {
	requested := reqs.RequestedAmenities()

	out := make([]models.RankedCandidate, 0, len(candidates))
	for _, room := range candidates {
		if !matchesHardConstraints(reqs, room) {
			continue // structurally disqualified, score 0 by definition
		}
		score, reasons := scoreRoom(reqs, requested, room)
		out = append(out, models.RankedCandidate{Room: room, Score: score, Reasons: reasons})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Room.RoomNumber < out[j].Room.RoomNumber
	})
	return out
}

func scoreRoom(reqs models.RoomRequirements, requested []string, room models.Room) (int, []string) {
	score := baseScore
	var reasons []string

	if reqs.Capacity != nil {
		score += capacityFitBonus(room.Capacity, *reqs.Capacity)
		reasons = append(reasons, fmt.Sprintf("seats %d (you asked for %d)", room.Capacity, *reqs.Capacity))
	}
	if reqs.RoomType != nil {
		reasons = append(reasons, fmt.Sprintf("room type is %s", room.RoomType))
	}

	requestedSet := make(map[string]bool, len(requested))
	for _, amenity := range requested {
		requestedSet[amenity] = true
		if room.HasAmenity(amenity) {
			score += requestedAmenityBonus
			reasons = append(reasons, "has "+amenity)
		}
	}

	var extras []string
	for _, amenity := range allAmenities {
		if !requestedSet[amenity] && room.HasAmenity(amenity) {
			score += extraAmenityBonus
			extras = append(extras, amenity)
		}
	}
	if len(extras) > 0 {
		reasons = append(reasons, "also offers "+strings.Join(extras, ", "))
	}

	if len(reasons) == 0 {
		reasons = []string{"meets all specified requirements"}
	}

	if score > 100 {
		score = 100
	}
	if score < 1 {
		score = 1
	}
	return score, reasons
}

// capacityFitBonus rewards rooms close to the requested capacity so a
// 6-seat request prefers an 8-seat room over a 40-seat hall.
func capacityFitBonus(roomCapacity, required int) int {
	surplus := roomCapacity - required
	if surplus < 0 {
		return 0
	}
	bonus := capacityFitMaxBonus - surplus
	if bonus < 0 {
		return 0
	}
	return bonus
}

// oracleRanking is one entry of the oracle's optional re-ranking payload.
type oracleRanking struct {
	RoomNumber string   `json:"roomNumber"`
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
}

// ApplyOracleRanking re-validates an oracle-produced ranking against the
// deterministic one and applies it only when every entry passes: known
// room, score in [1,100], non-empty reasons, every candidate covered
// exactly once. Any violation discards the oracle output in favour of the
// deterministic ranking.
func ApplyOracleRanking(raw string, deterministic []models.RankedCandidate) []models.RankedCandidate {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start < 0 || end <= start {
		return deterministic
	}

	var rankings []oracleRanking
	if err := json.Unmarshal([]byte(raw[start:end+1]), &rankings); err != nil {
		return deterministic
	}
	if len(rankings) != len(deterministic) {
		return deterministic
	}

	byRoom := make(map[string]models.RankedCandidate, len(deterministic))
	for _, c := range deterministic {
		byRoom[c.Room.RoomNumber] = c
	}

	out := make([]models.RankedCandidate, 0, len(rankings))
	seen := make(map[string]bool, len(rankings))
	for _, r := range rankings {
		base, ok := byRoom[r.RoomNumber]
		if !ok || seen[r.RoomNumber] {
			return deterministic
		}
		if r.Score < 1 || r.Score > 100 || len(r.Reasons) == 0 {
			return deterministic
		}
		seen[r.RoomNumber] = true
		out = append(out, models.RankedCandidate{Room: base.Room, Score: r.Score, Reasons: r.Reasons})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Room.RoomNumber < out[j].Room.RoomNumber
	})
	return out
}
