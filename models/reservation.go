package models

import "time"

// Reservation statuses. StatusPending exists in the schema for a future
// approval workflow; no operation in this core currently produces it.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
)

// Reservation is a confirmed booking record. Invariant: no two confirmed
// reservations on the same room may have overlapping windows.
type Reservation struct {
	ID             string     `bson:"id" json:"id"` // system-generated UUID
	RoomNumber     string     `bson:"room_number" json:"roomNumber"`
	RequesterName  string     `bson:"requester_name" json:"requesterName"`
	RequesterEmail string     `bson:"requester_email" json:"requesterEmail"`
	Window         TimeWindow `bson:"window" json:"window"`
	Status         string     `bson:"status" json:"status"`
	Purpose        string     `bson:"purpose,omitempty" json:"purpose,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
}

// ReservationDraft is the caller-supplied payload for a new reservation.
type ReservationDraft struct {
	RoomNumber     string     `json:"roomNumber" binding:"required"`
	RequesterName  string     `json:"requesterName" binding:"required"`
	RequesterEmail string     `json:"requesterEmail" binding:"required"`
	Window         TimeWindow `json:"window" binding:"required"`
	Purpose        string     `json:"purpose,omitempty"`
}

// ReservationPatch carries the updatable fields; nil means unchanged.
type ReservationPatch struct {
	RequesterName  *string     `json:"requesterName,omitempty"`
	RequesterEmail *string     `json:"requesterEmail,omitempty"`
	Window         *TimeWindow `json:"window,omitempty"`
	Purpose        *string     `json:"purpose,omitempty"`
}
