package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"roomly/config"
	"roomly/models"
	ai "roomly/services/intelligence"
	"roomly/utils"

	"go.uber.org/zap"
)

// minInputLength is checked before any oracle call; shorter input cannot
// name a room requirement.
const minInputLength = 5

const (
	minCapacity = 1
	maxCapacity = 1000
)

// RequirementExtractor turns free text into a validated RoomRequirements.
// The oracle does the language understanding; this component owns input
// gating, parsing of the untrusted oracle output, and domain
// re-validation of every field.
type RequirementExtractor struct {
	Oracle  ai.Oracle
	Timeout time.Duration    // zero means config.OracleTimeout()
	Now     func() time.Time // injectable clock for tests
}

// oraclePayload is the shape we accept from the oracle. Unknown fields are
// ignored; absent fields stay nil ("don't care").
type oraclePayload struct {
	models.RoomRequirements
	OutOfDomain bool   `json:"outOfDomain,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func (x *RequirementExtractor) timeout() time.Duration {
	if x.Timeout > 0 {
		return x.Timeout
	}
	return config.OracleTimeout()
}

func (x *RequirementExtractor) now() time.Time {
	if x.Now != nil {
		return x.Now()
	}
	return time.Now()
}

// Extract converts free text into validated requirements, failing closed
// on anything it cannot vouch for.
func (x *RequirementExtractor) Extract(ctx context.Context, freeText string) (*models.RoomRequirements, error) {
	trimmed := strings.TrimSpace(freeText)
	if len([]rune(trimmed)) < minInputLength {
		return nil, &DomainRejectionError{Reason: "the request is too short to describe a room"}
	}

	callCtx, cancel := context.WithTimeout(ctx, x.timeout())
	defer cancel()

	// Any transport failure or timeout is an infrastructure problem, not a
	// judgment about the input.
	raw, err := x.Oracle.ExtractRequirements(callCtx, trimmed)
	if err != nil {
		return nil, &OracleUnavailableError{Cause: err}
	}

	payload, err := parseOraclePayload(raw)
	if err != nil {
		utils.GetLogger().Warn("unparseable oracle output", zap.Error(err))
		return nil, err
	}
	if payload.OutOfDomain {
		reason := payload.Reason
		if reason == "" {
			reason = "the text does not describe a room booking"
		}
		return nil, &DomainRejectionError{Reason: reason}
	}

	reqs := payload.RoomRequirements
	if err := x.validate(&reqs); err != nil {
		return nil, err
	}
	return &reqs, nil
}

// parseOraclePayload locates the outermost JSON object in a blob that may
// be wrapped in markdown fencing or commentary, and parses only that span.
func parseOraclePayload(raw string) (*oraclePayload, error) {
	span, err := extractJSONSpan(raw)
	if err != nil {
		return nil, err
	}
	var payload oraclePayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, &UnparseableError{Detail: "malformed structured payload"}
	}
	return &payload, nil
}

// extractJSONSpan returns the substring from the first '{' to its matching
// closing brace, tracking string literals so braces inside them don't
// count.
func extractJSONSpan(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", &UnparseableError{Detail: "no structured payload found"}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}
	return "", &UnparseableError{Detail: "unterminated structured payload"}
}

// validate re-checks domain validity independent of the oracle's own
// judgment. Invalid fields reject the whole extraction; nothing is ever
// silently defaulted.
func (x *RequirementExtractor) validate(reqs *models.RoomRequirements) error {
	if reqs.Capacity != nil && (*reqs.Capacity < minCapacity || *reqs.Capacity > maxCapacity) {
		return &DomainRejectionError{Reason: "capacity must be between 1 and 1000"}
	}
	if reqs.RoomType != nil {
		switch *reqs.RoomType {
		case models.RoomTypeClassroom, models.RoomTypeStudyRoom:
		default:
			return &DomainRejectionError{Reason: "unknown room type " + *reqs.RoomType}
		}
	}
	if reqs.Date != nil {
		day, err := time.ParseInLocation("2006-01-02", *reqs.Date, time.Local)
		if err != nil {
			return &DomainRejectionError{Reason: "date must be in YYYY-MM-DD form"}
		}
		today := x.now()
		todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		if day.Before(todayMidnight) {
			return &DomainRejectionError{Reason: "the requested date is in the past"}
		}
	}
	if reqs.StartTime != nil {
		if _, err := time.Parse("15:04", *reqs.StartTime); err != nil {
			return &DomainRejectionError{Reason: "start time must be in HH:MM form"}
		}
	}
	if reqs.EndTime != nil {
		if _, err := time.Parse("15:04", *reqs.EndTime); err != nil {
			return &DomainRejectionError{Reason: "end time must be in HH:MM form"}
		}
	}
	if reqs.StartTime != nil && reqs.EndTime != nil {
		start, _ := time.Parse("15:04", *reqs.StartTime)
		end, _ := time.Parse("15:04", *reqs.EndTime)
		if !end.After(start) {
			return &DomainRejectionError{Reason: "end time must be after start time"}
		}
	}
	return nil
}

// DeriveWindow turns date + start/end times into a concrete TimeWindow.
// Only valid when HasFullWindow() holds.
func DeriveWindow(reqs models.RoomRequirements) (models.TimeWindow, error) {
	if !reqs.HasFullWindow() {
		return models.TimeWindow{}, errors.New("requirements do not carry a full window")
	}
	day, err := time.ParseInLocation("2006-01-02", *reqs.Date, time.Local)
	if err != nil {
		return models.TimeWindow{}, err
	}
	start, err := time.Parse("15:04", *reqs.StartTime)
	if err != nil {
		return models.TimeWindow{}, err
	}
	end, err := time.Parse("15:04", *reqs.EndTime)
	if err != nil {
		return models.TimeWindow{}, err
	}
	return models.TimeWindow{
		Start: day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute),
		End:   day.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute),
	}, nil
}
