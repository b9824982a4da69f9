package repository

import (
	reservationRepo "roomly/database/repository/reservation"
	roomRepo "roomly/database/repository/room"
)

// Re-export the RoomRepository interface and constructor.
type RoomRepository = roomRepo.RoomRepository

var NewMongoRoomRepo = roomRepo.NewMongoRoomRepo

// Re-export the ReservationRepository interface and constructor.
type ReservationRepository = reservationRepo.ReservationRepository

var NewMongoReservationRepo = reservationRepo.NewMongoReservationRepo
