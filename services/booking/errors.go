package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the booking flow.
const (
	CodeInvalidDateRange      = "InvalidDateRange"
	CodeInvalidMobileNumber   = "InvalidMobileNumber"
	CodeRoomSelectionMismatch = "RoomSelectionMismatch"
	CodeInvalidGuestDetails   = "InvalidGuestDetails"
	CodeInvalidRoomsCount     = "InvalidRoomsCount"
	CodeUnknownFloor          = "UnknownFloor"
	CodeUnknownRoomNumber     = "UnknownRoomNumber"
	CodeInvalidStep           = "InvalidStep"
	CodeSessionNotFound       = "SessionNotFound"
	CodeConnectionFailure     = "ConnectionFailure"
)

// FlowError is a typed booking flow error. Validation errors leave the
// session untouched; ConnectionFailure keeps the session in the payment step
// so the guest can retry without re-entering details.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFlowError(code, msg string) error {
	return &FlowError{Code: code, Message: msg}
}

// ErrorCode extracts the flow error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// IsValidation reports whether err is a guest-input validation failure,
// recoverable by correcting the form.
func IsValidation(err error) bool {
	switch ErrorCode(err) {
	case CodeInvalidDateRange, CodeInvalidMobileNumber, CodeRoomSelectionMismatch,
		CodeInvalidGuestDetails, CodeInvalidRoomsCount, CodeUnknownFloor,
		CodeUnknownRoomNumber, CodeInvalidStep:
		return true
	}
	return false
}
