package routes

import (
	"time"

	"roomly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Register wires all endpoints onto the router.
func Register(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/search", h.SearchRooms)

		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:number", h.GetRoom)
		api.GET("/rooms/:number/availability", h.CheckAvailability)
		api.GET("/rooms/:number/slots", h.GetReservedSlots)
		api.GET("/rooms/:number/schedule", h.GetDaySchedule)

		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListUserReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.PUT("/reservations/:id", h.UpdateReservation)
		api.DELETE("/reservations/:id", h.CancelReservation)
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/rooms", h.CreateRoom)
		admin.PUT("/rooms/:number", h.UpdateRoom)
		admin.DELETE("/rooms/:number", h.DeleteRoom)
	}
}
