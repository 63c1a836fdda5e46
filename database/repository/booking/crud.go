package bookingRepo

import (
	"context"
	"time"

	"sainandadeep/models"

	"github.com/google/uuid"
)

// Create inserts a new booking record and returns its ID. Resubmissions with
// the same transaction ID are not deduplicated; each insert is a new row.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}
