package models

// Amenity names shared between requirements, filtering and ranking.
const (
	AmenityProjector    = "projector"
	AmenityAircon       = "air conditioning"
	AmenityMicrophone   = "microphone"
	AmenityCamera       = "camera"
	AmenityQuiet        = "quiet"
	AmenityNaturalLight = "natural light"
)

// RoomRequirements is a partial constraint set extracted from free text.
// Every field is optional: nil means "don't care". An amenity pointer set
// to true is a hard requirement; an explicit false carries no constraint
// (only true triggers filtering).
type RoomRequirements struct {
	Capacity        *int    `json:"capacity,omitempty"`
	RoomType        *string `json:"roomType,omitempty"`
	HasProjector    *bool   `json:"hasProjector,omitempty"`
	HasAircon       *bool   `json:"hasAircon,omitempty"`
	HasMicrophone   *bool   `json:"hasMicrophone,omitempty"`
	HasCamera       *bool   `json:"hasCamera,omitempty"`
	IsQuiet         *bool   `json:"isQuiet,omitempty"`
	HasNaturalLight *bool   `json:"hasNaturalLight,omitempty"`
	Date            *string `json:"date,omitempty"`      // "2006-01-02"
	StartTime       *string `json:"startTime,omitempty"` // "15:04"
	EndTime         *string `json:"endTime,omitempty"`   // "15:04"
	Purpose         *string `json:"purpose,omitempty"`
}

// RequestedAmenities returns the amenity names explicitly required (true).
func (r RoomRequirements) RequestedAmenities() []string {
	var out []string
	for _, a := range []struct {
		name string
		flag *bool
	}{
		{AmenityProjector, r.HasProjector},
		{AmenityAircon, r.HasAircon},
		{AmenityMicrophone, r.HasMicrophone},
		{AmenityCamera, r.HasCamera},
		{AmenityQuiet, r.IsQuiet},
		{AmenityNaturalLight, r.HasNaturalLight},
	} {
		if a.flag != nil && *a.flag {
			out = append(out, a.name)
		}
	}
	return out
}

// HasFullWindow reports whether date, start and end time are all present,
// i.e. a concrete booking window can be derived for availability filtering.
func (r RoomRequirements) HasFullWindow() bool {
	return r.Date != nil && r.StartTime != nil && r.EndTime != nil
}
