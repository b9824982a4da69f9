package models

// RankedCandidate is one scored entry in a search result. Score 0 is
// reserved for structural disqualification (the ranker drops such rooms
// before results are returned); surviving candidates score in (0, 100].
type RankedCandidate struct {
	Room    Room     `json:"room"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// SearchResult is the orchestrator's caller-facing response.
type SearchResult struct {
	Requirements RoomRequirements  `json:"requirements"`
	Candidates   []RankedCandidate `json:"candidates"`
	Message      string            `json:"message"`
}
