package models

// ReservedSlot is a display-oriented view of one confirmed reservation's
// window on a given date.
type ReservedSlot struct {
	Window TimeWindow `json:"window"`
	Label  string     `json:"label"` // e.g. "09:00–10:30"
}

// SchedulePeriod annotates one cell of the fixed day grid as free or taken.
type SchedulePeriod struct {
	Label     string `json:"label"` // e.g. "08:00–10:00"
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Available bool   `json:"available"`
}

// DaySchedule is the six-period, two-hour display grid for a (room, date)
// pair, 08:00 through 20:00.
type DaySchedule struct {
	RoomNumber string           `json:"roomNumber"`
	Date       string           `json:"date"`
	Periods    []SchedulePeriod `json:"periods"`
}
