package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sainandadeep/services/review"
)

// ReviewHandler exposes the reviews collector over HTTP.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(service review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: service}
}

// GetReviews returns the review feed. Store failures are invisible here; the
// feed silently degrades to the static testimonials with a source tag.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	feed := h.Service.Load(c.Request.Context())
	c.JSON(http.StatusOK, feed)
}

// PostReview persists a guest review and returns the reloaded feed.
func (h *ReviewHandler) PostReview(c *gin.Context) {
	var input review.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	feed, err := h.Service.Submit(c.Request.Context(), input)
	if err != nil {
		switch review.ErrorCode(err) {
		case review.CodeInvalidReview:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Your review could not be saved. Please try again."})
		}
		return
	}
	c.JSON(http.StatusCreated, feed)
}
