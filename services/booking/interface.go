package booking

import (
	"context"

	"sainandadeep/models"
)

// RoomSelection is one toggle of the floor/room-number picker. Changing the
// floor or the requested rooms count clears the current selection first.
type RoomSelection struct {
	Floor      string `json:"floor"`
	RoomsCount int    `json:"rooms_count"`
	RoomNumber string `json:"room_number"`
}

// ConfirmResult is the outcome of a successful payment confirmation.
type ConfirmResult struct {
	Session *models.BookingSession `json:"session"`
	Booking models.Booking         `json:"booking"`
	// RedirectURL is the external payment page, set for the online method only.
	RedirectURL string `json:"redirect_url,omitempty"`
	// ConfirmURL is the wa.me deep link asking management to confirm the stay.
	ConfirmURL string `json:"confirm_url"`
	// DisplayDelayMS is how long the client shows the processing state before
	// switching to the success view.
	DisplayDelayMS int `json:"display_delay_ms"`
}

// ShareReceipt is the native-share payload for a finished booking, with the
// wa.me fallback for platforms without a share sheet.
type ShareReceipt struct {
	Title            string `json:"title"`
	Text             string `json:"text"`
	WhatsAppShareURL string `json:"whatsapp_share_url"`
	ConfirmURL       string `json:"confirm_url"`
}

// BookingFlowService drives the details -> payment -> success workflow of one
// booking session.
type BookingFlowService interface {
	Start(ctx context.Context, roomID string) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	ToggleRoomNumber(ctx context.Context, sessionID string, sel RoomSelection) (*models.BookingSession, error)
	SubmitDetails(ctx context.Context, sessionID string, draft models.BookingDraft) (*models.BookingSession, error)
	ConfirmPayment(ctx context.Context, sessionID, method string) (*ConfirmResult, error)
	Receipt(ctx context.Context, sessionID string) (*ShareReceipt, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingSession, error)
}
