package reviewRepo

import (
	"context"

	"sainandadeep/database"
	"sainandadeep/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository provides insert and ordered select over guest reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review models.Review) (string, error)
	GetAll(ctx context.Context) ([]models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a new ReviewRepository instance using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	db := database.MongoClient.Database("sainandadeep")
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}
