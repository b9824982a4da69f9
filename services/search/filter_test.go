package search

import (
	"testing"

	"roomly/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

var testCatalog = []models.Room{
	{
		RoomNumber:   "101",
		Floor:        1,
		RoomType:     models.RoomTypeClassroom,
		Capacity:     10,
		Area:         42.5,
		HasProjector: true,
	},
	{
		RoomNumber: "102",
		Floor:      1,
		RoomType:   models.RoomTypeClassroom,
		Capacity:   4,
		Area:       18,
		HasAircon:  true,
	},
	{
		RoomNumber:      "201",
		Floor:           2,
		RoomType:        models.RoomTypeStudyRoom,
		Capacity:        2,
		Area:            9,
		IsQuiet:         true,
		HasNaturalLight: true,
	},
}

func roomNumbers(rooms []models.Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.RoomNumber
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterRooms(t *testing.T) {
	tests := []struct {
		name string
		reqs models.RoomRequirements
		want []string
	}{
		{
			name: "no constraints match everything",
			reqs: models.RoomRequirements{},
			want: []string{"101", "102", "201"},
		},
		{
			name: "capacity is a minimum",
			reqs: models.RoomRequirements{Capacity: intPtr(4)},
			want: []string{"101", "102"},
		},
		{
			name: "capacity and amenity combine",
			reqs: models.RoomRequirements{Capacity: intPtr(8), HasProjector: boolPtr(true)},
			want: []string{"101"},
		},
		{
			name: "room type is exact",
			reqs: models.RoomRequirements{RoomType: strPtr(models.RoomTypeStudyRoom)},
			want: []string{"201"},
		},
		{
			name: "explicit false is not a constraint",
			reqs: models.RoomRequirements{HasProjector: boolPtr(false)},
			want: []string{"101", "102", "201"},
		},
		{
			name: "missing amenity excludes",
			reqs: models.RoomRequirements{HasMicrophone: boolPtr(true)},
			want: []string{},
		},
		{
			name: "multiple amenities all required",
			reqs: models.RoomRequirements{IsQuiet: boolPtr(true), HasNaturalLight: boolPtr(true)},
			want: []string{"201"},
		},
		{
			name: "capacity above every room",
			reqs: models.RoomRequirements{Capacity: intPtr(50)},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roomNumbers(FilterRooms(tt.reqs, testCatalog))
			if !equalStrings(got, tt.want) {
				t.Errorf("FilterRooms = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterRoomsIdempotent(t *testing.T) {
	reqs := models.RoomRequirements{Capacity: intPtr(4), HasAircon: boolPtr(true)}
	once := FilterRooms(reqs, testCatalog)
	twice := FilterRooms(reqs, once)
	if !equalStrings(roomNumbers(once), roomNumbers(twice)) {
		t.Errorf("second application changed the result: %v vs %v", roomNumbers(once), roomNumbers(twice))
	}
}

func TestFilterRoomsDoesNotMutateInput(t *testing.T) {
	catalog := make([]models.Room, len(testCatalog))
	copy(catalog, testCatalog)

	FilterRooms(models.RoomRequirements{Capacity: intPtr(5)}, catalog)

	for i := range catalog {
		if catalog[i] != testCatalog[i] {
			t.Fatalf("catalog entry %d mutated", i)
		}
	}
}
