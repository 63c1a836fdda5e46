package bookingRepo

import (
	"context"

	"sainandadeep/database"
	"sainandadeep/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the insert-only store for submitted booking requests.
// Records are confirmed manually by management and never read back here.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("sainandadeep")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
