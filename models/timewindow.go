package models

import (
	"fmt"
	"time"
)

// TimeWindow is a half-open interval [Start, End) in a single timezone.
// A reservation ending at 10:00 does not conflict with one starting at 10:00.
type TimeWindow struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Validate checks the basic interval invariant.
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("time window requires both start and end")
	}
	if !w.End.After(w.Start) {
		return fmt.Errorf("time window end %s must be after start %s",
			w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339))
	}
	return nil
}

// Overlaps reports whether two half-open windows intersect.
// Covers partial-left, partial-right and full containment in either
// direction; exact touching (a.End == b.Start) is not an overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Duration returns the window length.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// ClockLabel renders the window as a closed clock interval for display,
// e.g. "09:00–10:30".
func (w TimeWindow) ClockLabel() string {
	return fmt.Sprintf("%s–%s", w.Start.Format("15:04"), w.End.Format("15:04"))
}
