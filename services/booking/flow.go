// File: services/booking/flow.go
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "sainandadeep/database/repository/booking"
	"sainandadeep/models"
	"sainandadeep/services/catalog"
	"sainandadeep/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Display delays before the client flips to the success view. The online
// method is longer because it covers the redirect hand-off.
const (
	paypalDisplayDelayMS = 3500
	cashDisplayDelayMS   = 2000
)

// DefaultBookingFlowService implements BookingFlowService on top of a
// SessionStore and the insert-only booking repository.
type DefaultBookingFlowService struct {
	Store SessionStore
	Repo  bookingRepo.BookingRepository
}

// NewTransactionID generates the opaque receipt identifier for one flow
// instance, e.g. "SN-3F2A91C04". It correlates the draft with its receipt and
// confirmation message; it is not a payment ledger ID.
func NewTransactionID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "SN-" + raw[:9]
}

// StripMobile removes every non-digit character from a mobile number input.
func StripMobile(mobile string) string {
	var sb strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Start opens a new booking session for the given catalog room.
func (s *DefaultBookingFlowService) Start(ctx context.Context, roomID string) (*models.BookingSession, error) {
	room := catalog.RoomByID(roomID)
	if room == nil {
		return nil, NewFlowError(CodeInvalidGuestDetails, fmt.Sprintf("unknown room type %q", roomID))
	}

	session := &models.BookingSession{
		ID:     uuid.New().String(),
		RoomID: room.ID,
		Step:   models.StepDetails,
		Draft: models.BookingDraft{
			RoomsCount: 1,
			Floor:      catalog.Floors[0].Label,
		},
		TransactionID: NewTransactionID(),
		CreatedAt:     time.Now(),
	}
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the current session state.
func (s *DefaultBookingFlowService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// ToggleRoomNumber applies one click of the floor/room-number picker.
// Toggling a selected room removes it; adding while below the requested count
// appends; adding while already at the requested count replaces the whole
// selection with the clicked room (last-click-wins).
func (s *DefaultBookingFlowService) ToggleRoomNumber(ctx context.Context, sessionID string, sel RoomSelection) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDetails {
		return nil, NewFlowError(CodeInvalidStep, "room selection is only editable before payment")
	}

	if sel.Floor != "" && sel.Floor != session.Draft.Floor {
		if catalog.FloorByLabel(sel.Floor) == nil {
			return nil, NewFlowError(CodeUnknownFloor, fmt.Sprintf("unknown floor %q", sel.Floor))
		}
		session.Draft.Floor = sel.Floor
		session.Draft.RoomNumbers = nil
	}
	if sel.RoomsCount > 0 && sel.RoomsCount != session.Draft.RoomsCount {
		if sel.RoomsCount > catalog.TotalHotelRooms {
			return nil, NewFlowError(CodeInvalidRoomsCount, fmt.Sprintf("rooms count must be between 1 and %d", catalog.TotalHotelRooms))
		}
		session.Draft.RoomsCount = sel.RoomsCount
		session.Draft.RoomNumbers = nil
	}

	if sel.RoomNumber != "" {
		if !catalog.FloorHasRoom(session.Draft.Floor, sel.RoomNumber) {
			return nil, NewFlowError(CodeUnknownRoomNumber, fmt.Sprintf("room %q is not on %s", sel.RoomNumber, session.Draft.Floor))
		}
		session.Draft.RoomNumbers = toggleSelection(session.Draft.RoomNumbers, sel.RoomNumber, session.Draft.RoomsCount)
	}

	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func toggleSelection(selected []string, roomNumber string, roomsCount int) []string {
	for i, rn := range selected {
		if rn == roomNumber {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	if len(selected) < roomsCount {
		return append(selected, roomNumber)
	}
	return []string{roomNumber}
}

// SubmitDetails validates the draft and advances the flow to the payment
// step. On any validation failure the stored session is left untouched and no
// side effect is performed.
func (s *DefaultBookingFlowService) SubmitDetails(ctx context.Context, sessionID string, draft models.BookingDraft) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepSuccess {
		return nil, NewFlowError(CodeInvalidStep, "booking already completed; reset to start a new one")
	}

	merged := mergeDraft(session.Draft, draft)
	merged.Mobile = StripMobile(merged.Mobile)

	room := catalog.RoomByID(session.RoomID)
	if err := validateDraft(merged); err != nil {
		return nil, err
	}
	_ = room // room existence was checked at Start

	session.Draft = merged
	session.Step = models.StepPayment
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// mergeDraft overlays the submitted fields onto the stored draft. Zero-valued
// fields keep their stored values so clients that drove the room picker
// server-side do not need to resend the selection.
func mergeDraft(stored, submitted models.BookingDraft) models.BookingDraft {
	out := stored
	if submitted.GuestName != "" {
		out.GuestName = submitted.GuestName
	}
	if submitted.Mobile != "" {
		out.Mobile = submitted.Mobile
	}
	if submitted.Address != "" {
		out.Address = submitted.Address
	}
	if submitted.CheckIn != "" {
		out.CheckIn = submitted.CheckIn
	}
	if submitted.CheckOut != "" {
		out.CheckOut = submitted.CheckOut
	}
	if submitted.RoomsCount > 0 {
		out.RoomsCount = submitted.RoomsCount
	}
	if submitted.Floor != "" {
		out.Floor = submitted.Floor
	}
	if submitted.RoomNumbers != nil {
		out.RoomNumbers = submitted.RoomNumbers
	}
	return out
}

func validateDraft(draft models.BookingDraft) error {
	if strings.TrimSpace(draft.GuestName) == "" || strings.TrimSpace(draft.Address) == "" {
		return NewFlowError(CodeInvalidGuestDetails, "Please provide your full name and home address.")
	}
	if Nights(draft.CheckIn, draft.CheckOut) <= 0 {
		return NewFlowError(CodeInvalidDateRange, "Please select valid arrival and departure dates.")
	}
	if len(draft.Mobile) != 10 {
		return NewFlowError(CodeInvalidMobileNumber, "Please enter a valid 10-digit mobile number.")
	}
	if draft.RoomsCount < 1 || draft.RoomsCount > catalog.TotalHotelRooms {
		return NewFlowError(CodeInvalidRoomsCount, fmt.Sprintf("Rooms count must be between 1 and %d.", catalog.TotalHotelRooms))
	}
	if catalog.FloorByLabel(draft.Floor) == nil {
		return NewFlowError(CodeUnknownFloor, fmt.Sprintf("Unknown floor %q.", draft.Floor))
	}
	for _, rn := range draft.RoomNumbers {
		if !catalog.FloorHasRoom(draft.Floor, rn) {
			return NewFlowError(CodeUnknownRoomNumber, fmt.Sprintf("Room %s is not on %s.", rn, draft.Floor))
		}
	}
	if len(draft.RoomNumbers) != draft.RoomsCount {
		return NewFlowError(CodeRoomSelectionMismatch,
			fmt.Sprintf("Please select exactly %d room(s) from the room selection.", draft.RoomsCount))
	}
	return nil
}

// ConfirmPayment computes the total price, persists the booking record and
// advances to success. If the insert fails the session stays in the payment
// step with the same transaction ID, so a retry does not re-enter details.
func (s *DefaultBookingFlowService) ConfirmPayment(ctx context.Context, sessionID, method string) (*ConfirmResult, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment {
		return nil, NewFlowError(CodeInvalidStep, "details must be submitted before payment")
	}
	if method != models.PaymentPayPal && method != models.PaymentCash {
		return nil, NewFlowError(CodeInvalidGuestDetails, fmt.Sprintf("unsupported payment method %q", method))
	}

	room := catalog.RoomByID(session.RoomID)
	nights := Nights(session.Draft.CheckIn, session.Draft.CheckOut)
	total := TotalPrice(nights, room.Price, session.Draft.RoomsCount)

	record := models.Booking{
		GuestName:     session.Draft.GuestName,
		MobileNumber:  session.Draft.Mobile,
		Address:       session.Draft.Address,
		CheckIn:       session.Draft.CheckIn,
		CheckOut:      session.Draft.CheckOut,
		RoomsCount:    session.Draft.RoomsCount,
		RoomType:      room.Name,
		TotalPrice:    total,
		PaymentMethod: method,
		TransactionID: session.TransactionID,
		Floor:         session.Draft.Floor,
		RoomNumbers:   strings.Join(session.Draft.RoomNumbers, ", "),
	}

	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		logger.Error("booking insert failed",
			zap.String("sessionID", session.ID),
			zap.String("transactionID", session.TransactionID),
			zap.Error(err))
		return nil, NewFlowError(CodeConnectionFailure, "Connection error. Please try again.")
	}
	record.ID = id

	session.Step = models.StepSuccess
	if err := s.Store.Set(ctx, session); err != nil {
		logger.Warn("failed to persist success step", zap.String("sessionID", session.ID), zap.Error(err))
	}

	result := &ConfirmResult{
		Session:        session,
		Booking:        record,
		ConfirmURL:     confirmToHotelLink(room.Name, session.TransactionID),
		DisplayDelayMS: cashDisplayDelayMS,
	}
	if method == models.PaymentPayPal {
		result.RedirectURL = catalog.Hotel.PayPalURL
		result.DisplayDelayMS = paypalDisplayDelayMS
	}

	logger.Info("booking request logged",
		zap.String("transactionID", session.TransactionID),
		zap.String("roomType", room.Name),
		zap.Int("totalPrice", total),
		zap.String("paymentMethod", method))
	return result, nil
}

// Reset clears the draft and the selected-room set and returns the flow to
// the details step. A reset starts a new flow instance, so the transaction
// identifier is regenerated.
func (s *DefaultBookingFlowService) Reset(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Step = models.StepDetails
	session.Draft = models.BookingDraft{
		RoomsCount: 1,
		Floor:      catalog.Floors[0].Label,
	}
	session.TransactionID = NewTransactionID()
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
