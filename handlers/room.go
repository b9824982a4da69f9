package handlers

import (
	"net/http"

	"roomly/models"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Catalog administration endpoints. These sit outside the scheduling core
// proper; they exist so the catalog collaborator boundary is concrete.

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.RoomRepo.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list rooms", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoom handles GET /api/rooms/:number.
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.RoomRepo.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		utils.GetLogger().Error("failed to fetch room", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room", "")
		return
	}
	if room == nil {
		utils.JSONError(c, http.StatusNotFound, "Not found", "room "+c.Param("number")+" not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

// CreateRoom handles POST /api/admin/rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if room.RoomNumber == "" || room.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room number and a positive capacity are required"})
		return
	}

	if err := h.RoomRepo.Create(c.Request.Context(), &room); err != nil {
		utils.GetLogger().Error("failed to create room", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

// UpdateRoom handles PUT /api/admin/rooms/:number.
func (h *Handler) UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	room.RoomNumber = c.Param("number")
	if room.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive capacity is required"})
		return
	}

	if err := h.RoomRepo.Update(c.Request.Context(), &room); err != nil {
		utils.GetLogger().Error("failed to update room", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

// DeleteRoom handles DELETE /api/admin/rooms/:number.
func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.RoomRepo.Delete(c.Request.Context(), c.Param("number")); err != nil {
		utils.GetLogger().Error("failed to delete room", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("number")})
}
