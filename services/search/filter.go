package search

import "roomly/models"

// FilterRooms applies the hard constraints to a catalog snapshot. Pure
// function: capacity is a minimum, room type an exact match, and an
// amenity filters only when explicitly required (true). An explicit false
// is treated the same as absent; only true triggers filtering. Individual
// field filters commute, so application order never changes the result.
func FilterRooms(reqs models.RoomRequirements, rooms []models.Room) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if matchesHardConstraints(reqs, room) {
			out = append(out, room)
		}
	}
	return out
}

func matchesHardConstraints(reqs models.RoomRequirements, room models.Room) bool {
	if reqs.Capacity != nil && room.Capacity < *reqs.Capacity {
		return false
	}
	if reqs.RoomType != nil && room.RoomType != *reqs.RoomType {
		return false
	}
	for _, amenity := range reqs.RequestedAmenities() {
		if !room.HasAmenity(amenity) {
			return false
		}
	}
	return true
}
