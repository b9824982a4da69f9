package handlers

import (
	"net/http"
	"time"

	"roomly/models"

	"github.com/gin-gonic/gin"
)

// CheckAvailability handles GET /api/rooms/:number/availability?start=...&end=...
// Times are RFC3339.
func (h *Handler) CheckAvailability(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start time, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end time, expected RFC3339"})
		return
	}

	window := models.TimeWindow{Start: start, End: end}
	available, err := h.Availability.IsAvailable(c.Request.Context(), c.Param("number"), window, "")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roomNumber": c.Param("number"),
		"window":     window,
		"available":  available,
	})
}

// GetReservedSlots handles GET /api/rooms/:number/slots?date=YYYY-MM-DD.
func (h *Handler) GetReservedSlots(c *gin.Context) {
	slots, err := h.Availability.ReservedSlots(c.Request.Context(), c.Param("number"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roomNumber": c.Param("number"),
		"date":       c.Query("date"),
		"slots":      slots,
	})
}

// GetDaySchedule handles GET /api/rooms/:number/schedule?date=YYYY-MM-DD.
func (h *Handler) GetDaySchedule(c *gin.Context) {
	schedule, err := h.Availability.DaySchedule(c.Request.Context(), c.Param("number"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}
