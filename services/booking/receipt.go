package booking

import (
	"context"
	"fmt"
	"strings"

	"sainandadeep/models"
	"sainandadeep/services/catalog"
)

// Receipt formats the human-readable share receipt for a session whose
// details have been submitted. The text carries the flow's transaction ID
// unchanged.
func (s *DefaultBookingFlowService) Receipt(ctx context.Context, sessionID string) (*ShareReceipt, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepDetails {
		return nil, NewFlowError(CodeInvalidStep, "no finalized booking to share yet")
	}

	room := catalog.RoomByID(session.RoomID)
	nights := Nights(session.Draft.CheckIn, session.Draft.CheckOut)
	total := TotalPrice(nights, room.Price, session.Draft.RoomsCount)
	text := receiptText(session, room.Name, total)

	return &ShareReceipt{
		Title:            "Booking Confirmation - " + catalog.Hotel.Name,
		Text:             text,
		WhatsAppShareURL: catalog.WhatsAppShareLink(text),
		ConfirmURL:       confirmToHotelLink(room.Name, session.TransactionID),
	}, nil
}

func receiptText(session *models.BookingSession, roomName string, total int) string {
	d := session.Draft
	return fmt.Sprintf(
		"🙏 Om Sai Ram!\n\nBooking Confirmation\n%s, Shirdi\n\nGuest: %s\nReceipt ID: %s\nRoom: %d x %s\nFloor: %s\nRooms: %s\nStay: %s to %s\nTotal: ₹%d\n\nManaged by %s",
		catalog.Hotel.Name,
		d.GuestName,
		session.TransactionID,
		d.RoomsCount,
		roomName,
		d.Floor,
		strings.Join(d.RoomNumbers, ", "),
		d.CheckIn,
		d.CheckOut,
		total,
		catalog.Hotel.ManagedBy,
	)
}

// confirmToHotelLink is the wa.me deep link asking management to manually
// confirm the submitted request.
func confirmToHotelLink(roomName, transactionID string) string {
	msg := fmt.Sprintf("Om Sai Ram! I have just submitted a booking request for %s (Receipt ID: %s). Please confirm my stay.",
		roomName, transactionID)
	return catalog.WhatsAppLink(msg)
}
