package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sainandadeep/models"
	"sainandadeep/services/concierge"
)

// ConciergeHandler relays chat messages to the AI concierge.
type ConciergeHandler struct {
	Service concierge.ConciergeService
}

func NewConciergeHandler(service concierge.ConciergeService) *ConciergeHandler {
	return &ConciergeHandler{Service: service}
}

// Chat answers one guest message given the resent conversation history.
// This endpoint never fails with an HTTP error for generation problems; the
// reply degrades to the canned apology instead.
func (h *ConciergeHandler) Chat(c *gin.Context) {
	var input struct {
		History []models.ChatMessage `json:"history"`
		Message string               `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reply := h.Service.Chat(c.Request.Context(), input.History, input.Message)
	c.JSON(http.StatusOK, reply)
}
