package review

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidReview     = "InvalidReview"
	CodeConnectionFailure = "ConnectionFailure"
)

// ReviewError is a typed review submission error.
type ReviewError struct {
	Code    string
	Message string
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewReviewError(code, msg string) error {
	return &ReviewError{Code: code, Message: msg}
}

// ErrorCode extracts the review error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var re *ReviewError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}
