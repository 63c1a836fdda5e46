package review

import (
	"context"

	"sainandadeep/models"
)

// Feed sources. Both render identically; the tag records whether the list
// came from the store or from the static testimonial fallback.
const (
	SourceLoaded   = "loaded"
	SourceFallback = "fallback"
)

// Feed is the finite, non-lazy review list produced by one Load call.
type Feed struct {
	Source  string          `json:"source"`
	Reviews []models.Review `json:"reviews"`
}

// ReviewInput is a guest's review submission.
type ReviewInput struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// ReviewService loads and submits guest reviews.
type ReviewService interface {
	Load(ctx context.Context) *Feed
	Submit(ctx context.Context, input ReviewInput) (*Feed, error)
}
