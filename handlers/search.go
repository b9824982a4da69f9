package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchRooms handles POST /api/search: free text in, ranked rooms out.
func (h *Handler) SearchRooms(c *gin.Context) {
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Orchestrator.Search(c.Request.Context(), input.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
