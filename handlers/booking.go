package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sainandadeep/models"
	"sainandadeep/services/booking"
	"sainandadeep/services/catalog"
)

// BookingHandler exposes the booking flow state machine over HTTP.
type BookingHandler struct {
	Service booking.BookingFlowService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingFlowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// respondFlowError maps booking flow errors onto the HTTP edge. Validation
// failures keep the session usable; connection failures carry the
// contact-management-directly suggestion.
func (h *BookingHandler) respondFlowError(c *gin.Context, err error) {
	code := booking.ErrorCode(err)
	var fe *booking.FlowError
	message := err.Error()
	if f, ok := err.(*booking.FlowError); ok {
		fe = f
		message = fe.Message
	}

	switch {
	case code == booking.CodeSessionNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": message, "code": code})
	case code == booking.CodeConnectionFailure:
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      message,
			"code":       code,
			"suggestion": "Please contact management directly for manual confirmation.",
			"contact": gin.H{
				"phone":    catalog.TelLink(),
				"whatsapp": catalog.WhatsAppLink(""),
			},
		})
	case booking.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": message, "code": code})
	default:
		h.Logger.Error("booking flow error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// StartSession opens a new booking flow for a catalog room.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		RoomID string `json:"room_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.Start(c.Request.Context(), input.RoomID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current flow state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ToggleRoom applies one click of the floor/room-number picker.
func (h *BookingHandler) ToggleRoom(c *gin.Context) {
	var sel booking.RoomSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.ToggleRoomNumber(c.Request.Context(), c.Param("sessionID"), sel)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitDetails validates the guest draft and moves the flow to payment.
func (h *BookingHandler) SubmitDetails(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SubmitDetails(c.Request.Context(), c.Param("sessionID"), draft)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmPayment finalizes the booking and persists the record.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var input struct {
		PaymentMethod string `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.ConfirmPayment(c.Request.Context(), c.Param("sessionID"), input.PaymentMethod)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetReceipt returns the share receipt for a finalized draft.
func (h *BookingHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.Service.Receipt(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// ResetSession clears the draft and returns the flow to the details step.
func (h *BookingHandler) ResetSession(c *gin.Context) {
	session, err := h.Service.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}
