package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"sainandadeep/models"
	"sainandadeep/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo records inserted bookings and can be told to fail.
type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.bookings = append(f.bookings, b)
	return fmt.Sprintf("bk-%d", len(f.bookings)), nil
}

func newTestService() (*DefaultBookingFlowService, *fakeBookingRepo) {
	repo := &fakeBookingRepo{}
	return &DefaultBookingFlowService{Store: NewMemorySessionStore(), Repo: repo}, repo
}

func validDraft() models.BookingDraft {
	return models.BookingDraft{
		GuestName:   "Ramesh Patil",
		Mobile:      "9876543210",
		Address:     "Pune, Maharashtra",
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-03",
		RoomsCount:  1,
		Floor:       "1st Floor",
		RoomNumbers: []string{"101"},
	}
}

func TestNewTransactionID(t *testing.T) {
	id := NewTransactionID()
	assert.True(t, strings.HasPrefix(id, "SN-"))
	assert.Len(t, id, 12)
	assert.Equal(t, strings.ToUpper(id), id)
	assert.NotEqual(t, id, NewTransactionID())
}

func TestStripMobile(t *testing.T) {
	assert.Equal(t, "9876543210", StripMobile("98765 43210"))
	assert.Equal(t, "9876543210", StripMobile("(987) 654-3210"))
	assert.Equal(t, "919876543210", StripMobile("+91 98765 43210"))
	assert.Equal(t, "", StripMobile("abc"))
}

func TestStartSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", session.RoomID)
	assert.Equal(t, models.StepDetails, session.Step)
	assert.Equal(t, 1, session.Draft.RoomsCount)
	assert.Equal(t, "1st Floor", session.Draft.Floor)
	assert.Empty(t, session.Draft.RoomNumbers)
	assert.True(t, strings.HasPrefix(session.TransactionID, "SN-"))

	// The session must be retrievable by its ID.
	got, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.TransactionID, got.TransactionID)
}

func TestStartSessionUnknownRoom(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Start(context.Background(), "99")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestGetMissingSession(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Get(context.Background(), "nope")
	assert.Equal(t, CodeSessionNotFound, ErrorCode(err))
}

func TestToggleRoomNumber(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	// Select a room, then toggle it off again.
	session, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "101"})
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, session.Draft.RoomNumbers)

	session, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "101"})
	require.NoError(t, err)
	assert.Empty(t, session.Draft.RoomNumbers)
}

func TestToggleLastClickWins(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	// With rooms count at 1, clicking a second room replaces the first.
	_, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "101"})
	require.NoError(t, err)
	session, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "102"})
	require.NoError(t, err)
	assert.Equal(t, []string{"102"}, session.Draft.RoomNumbers)

	// Raising the count clears the selection and allows two rooms.
	session, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomsCount: 2})
	require.NoError(t, err)
	assert.Empty(t, session.Draft.RoomNumbers)

	_, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "101"})
	require.NoError(t, err)
	session, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "102"})
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102"}, session.Draft.RoomNumbers)

	// Toggling a selected room removes just that room.
	session, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "101"})
	require.NoError(t, err)
	assert.Equal(t, []string{"102"}, session.Draft.RoomNumbers)
}

func TestToggleFloorChangeClearsSelection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	_, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "101"})
	require.NoError(t, err)

	session, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{Floor: "2nd Floor"})
	require.NoError(t, err)
	assert.Equal(t, "2nd Floor", session.Draft.Floor)
	assert.Empty(t, session.Draft.RoomNumbers)

	// Room numbers are validated against the currently selected floor.
	_, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "101"})
	assert.Equal(t, CodeUnknownRoomNumber, ErrorCode(err))

	_, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{Floor: "Penthouse"})
	assert.Equal(t, CodeUnknownFloor, ErrorCode(err))
}

func TestSubmitDetailsValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.BookingDraft)
		wantCode string
	}{
		{"missing name", func(d *models.BookingDraft) { d.GuestName = " " }, CodeInvalidGuestDetails},
		{"missing address", func(d *models.BookingDraft) { d.Address = "" }, CodeInvalidGuestDetails},
		{"same-day stay", func(d *models.BookingDraft) { d.CheckOut = d.CheckIn }, CodeInvalidDateRange},
		{"reversed dates", func(d *models.BookingDraft) { d.CheckIn, d.CheckOut = d.CheckOut, d.CheckIn }, CodeInvalidDateRange},
		{"short mobile", func(d *models.BookingDraft) { d.Mobile = "12345" }, CodeInvalidMobileNumber},
		{"mobile with country code", func(d *models.BookingDraft) { d.Mobile = "+91 9876543210" }, CodeInvalidMobileNumber},
		{"unknown floor", func(d *models.BookingDraft) { d.Floor = "5th Floor" }, CodeUnknownFloor},
		{"room off floor", func(d *models.BookingDraft) { d.RoomNumbers = []string{"201"} }, CodeUnknownRoomNumber},
		{"selection short of count", func(d *models.BookingDraft) { d.RoomsCount = 2 }, CodeRoomSelectionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			ctx := context.Background()
			session, err := svc.Start(ctx, "1")
			require.NoError(t, err)

			draft := validDraft()
			tt.mutate(&draft)

			_, err = svc.SubmitDetails(ctx, session.ID, draft)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ErrorCode(err))
			assert.True(t, IsValidation(err))

			// A rejected submission must not advance the flow.
			got, err := svc.Get(ctx, session.ID)
			require.NoError(t, err)
			assert.Equal(t, models.StepDetails, got.Step)
		})
	}
}

func TestSubmitDetailsStripsMobileFormatting(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	draft := validDraft()
	draft.Mobile = "98765 43210"
	session, err = svc.SubmitDetails(ctx, session.ID, draft)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", session.Draft.Mobile)
	assert.Equal(t, models.StepPayment, session.Step)
}

func TestSubmitDetailsKeepsServerSideSelection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	// Drive the picker server-side, then submit a draft without a selection.
	_, err = svc.ToggleRoomNumber(ctx, session.ID, RoomSelection{RoomNumber: "102"})
	require.NoError(t, err)

	draft := validDraft()
	draft.RoomNumbers = nil
	session, err = svc.SubmitDetails(ctx, session.ID, draft)
	require.NoError(t, err)
	assert.Equal(t, []string{"102"}, session.Draft.RoomNumbers)
}

func TestConfirmPaymentCash(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	session, err = svc.SubmitDetails(ctx, session.ID, validDraft())
	require.NoError(t, err)
	txnID := session.TransactionID

	result, err := svc.ConfirmPayment(ctx, session.ID, models.PaymentCash)
	require.NoError(t, err)

	// Standard Triple Room, two nights, one room.
	assert.Equal(t, 2000, result.Booking.TotalPrice)
	assert.Equal(t, "Standard Triple Room", result.Booking.RoomType)
	assert.Equal(t, "101", result.Booking.RoomNumbers)
	assert.Equal(t, txnID, result.Booking.TransactionID)
	assert.Equal(t, models.StepSuccess, result.Session.Step)
	assert.Empty(t, result.RedirectURL)
	assert.Equal(t, 2000, result.DisplayDelayMS)

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, "Ramesh Patil", repo.bookings[0].GuestName)
}

func TestConfirmPaymentPayPal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "2")
	require.NoError(t, err)

	draft := validDraft()
	draft.RoomsCount = 2
	draft.RoomNumbers = []string{"101", "102"}
	_, err = svc.SubmitDetails(ctx, session.ID, draft)
	require.NoError(t, err)

	result, err := svc.ConfirmPayment(ctx, session.ID, models.PaymentPayPal)
	require.NoError(t, err)

	// Deluxe AC Room, two nights, two rooms.
	assert.Equal(t, 6000, result.Booking.TotalPrice)
	assert.Equal(t, catalog.Hotel.PayPalURL, result.RedirectURL)
	assert.Equal(t, 3500, result.DisplayDelayMS)
	assert.Contains(t, result.ConfirmURL, "https://wa.me/"+catalog.Hotel.WhatsApp)
}

func TestConfirmPaymentRequiresPaymentStep(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, session.ID, models.PaymentCash)
	assert.Equal(t, CodeInvalidStep, ErrorCode(err))
}

func TestConfirmPaymentRejectsUnknownMethod(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)
	_, err = svc.SubmitDetails(ctx, session.ID, validDraft())
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, session.ID, "bitcoin")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestConfirmPaymentInsertFailureKeepsSession(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)
	session, err = svc.SubmitDetails(ctx, session.ID, validDraft())
	require.NoError(t, err)
	txnID := session.TransactionID

	repo.err = errors.New("connection refused")
	_, err = svc.ConfirmPayment(ctx, session.ID, models.PaymentCash)
	assert.Equal(t, CodeConnectionFailure, ErrorCode(err))

	// The session stays in the payment step with the same transaction ID, so
	// the guest can retry without re-entering details.
	got, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, got.Step)
	assert.Equal(t, txnID, got.TransactionID)

	repo.err = nil
	result, err := svc.ConfirmPayment(ctx, session.ID, models.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, txnID, result.Booking.TransactionID)
}

func TestReceipt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)

	// Nothing to share while still on the details step.
	_, err = svc.Receipt(ctx, session.ID)
	assert.Equal(t, CodeInvalidStep, ErrorCode(err))

	session, err = svc.SubmitDetails(ctx, session.ID, validDraft())
	require.NoError(t, err)

	receipt, err := svc.Receipt(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Booking Confirmation - Hotel Sai Nandadeep", receipt.Title)
	assert.Contains(t, receipt.Text, "Guest: Ramesh Patil")
	assert.Contains(t, receipt.Text, "Receipt ID: "+session.TransactionID)
	assert.Contains(t, receipt.Text, "Room: 1 x Standard Triple Room")
	assert.Contains(t, receipt.Text, "Stay: 2024-06-01 to 2024-06-03")
	assert.Contains(t, receipt.Text, "Total: ₹2000")
	assert.Contains(t, receipt.Text, "Managed by Gondkar Brothers")
	assert.True(t, strings.HasPrefix(receipt.WhatsAppShareURL, "https://wa.me/?text="))
	assert.Contains(t, receipt.ConfirmURL, catalog.Hotel.WhatsApp)
}

func TestResetStartsNewFlowInstance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)
	oldTxn := session.TransactionID

	session, err = svc.SubmitDetails(ctx, session.ID, validDraft())
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(ctx, session.ID, models.PaymentCash)
	require.NoError(t, err)

	session, err = svc.Reset(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, session.Step)
	assert.Empty(t, session.Draft.GuestName)
	assert.Empty(t, session.Draft.RoomNumbers)
	assert.Equal(t, 1, session.Draft.RoomsCount)
	assert.Equal(t, "1st Floor", session.Draft.Floor)
	assert.NotEqual(t, oldTxn, session.TransactionID)
}

func TestSubmitAfterSuccessRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	session, err := svc.Start(ctx, "1")
	require.NoError(t, err)
	_, err = svc.SubmitDetails(ctx, session.ID, validDraft())
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(ctx, session.ID, models.PaymentCash)
	require.NoError(t, err)

	_, err = svc.SubmitDetails(ctx, session.ID, validDraft())
	assert.Equal(t, CodeInvalidStep, ErrorCode(err))
}
