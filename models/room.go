package models

// Room types currently known to the catalog. The set is extensible;
// filtering compares raw strings so new types need no code change here.
const (
	RoomTypeClassroom = "classroom"
	RoomTypeStudyRoom = "study_room"
)

// Room is an immutable snapshot of a bookable room. Catalog management
// (create/update/delete) is an administrative concern; the scheduling core
// only ever reads these.
type Room struct {
	RoomNumber      string  `bson:"room_number" json:"roomNumber"` // unique, stable identifier
	Floor           int     `bson:"floor" json:"floor"`
	RoomType        string  `bson:"room_type" json:"roomType"`
	Capacity        int     `bson:"capacity" json:"capacity"`
	Area            float64 `bson:"area" json:"area"` // square meters
	HasProjector    bool    `bson:"has_projector" json:"hasProjector"`
	HasAircon       bool    `bson:"has_aircon" json:"hasAircon"`
	HasMicrophone   bool    `bson:"has_microphone" json:"hasMicrophone"`
	HasCamera       bool    `bson:"has_camera" json:"hasCamera"`
	IsQuiet         bool    `bson:"is_quiet" json:"isQuiet"`
	HasNaturalLight bool    `bson:"has_natural_light" json:"hasNaturalLight"`
}

// HasAmenity reports whether the room carries the named amenity flag.
func (r Room) HasAmenity(name string) bool {
	switch name {
	case AmenityProjector:
		return r.HasProjector
	case AmenityAircon:
		return r.HasAircon
	case AmenityMicrophone:
		return r.HasMicrophone
	case AmenityCamera:
		return r.HasCamera
	case AmenityQuiet:
		return r.IsQuiet
	case AmenityNaturalLight:
		return r.HasNaturalLight
	}
	return false
}
