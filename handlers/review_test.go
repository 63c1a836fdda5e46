package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"sainandadeep/models"
	"sainandadeep/services/review"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews []models.Review
	err     error
}

func (f *fakeReviewRepo) Create(ctx context.Context, r models.Review) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	r.ID = fmt.Sprintf("rv-%d", len(f.reviews)+1)
	r.CreatedAt = time.Now()
	f.reviews = append([]models.Review{r}, f.reviews...)
	return r.ID, nil
}

func (f *fakeReviewRepo) GetAll(ctx context.Context) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews, nil
}

func newReviewRouter(repo *fakeReviewRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(&review.DefaultReviewService{Repo: repo})

	router := gin.New()
	router.GET("/api/reviews", h.GetReviews)
	router.POST("/api/reviews", h.PostReview)
	return router
}

func TestGetReviewsFallbackIsStillOK(t *testing.T) {
	// A broken store must not surface as an HTTP error; the feed degrades to
	// the static testimonials with the fallback tag.
	router := newReviewRouter(&fakeReviewRepo{err: errors.New("connection refused")})

	w := doJSON(t, router, http.MethodGet, "/api/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"fallback"`)
	assert.Contains(t, w.Body.String(), "Rajesh Kulkarni")
}

func TestPostReviewReturnsReloadedFeed(t *testing.T) {
	router := newReviewRouter(&fakeReviewRepo{})

	w := doJSON(t, router, http.MethodPost, "/api/reviews", gin.H{
		"author":  "Meena Joshi",
		"rating":  4,
		"content": "Very close to the temple.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"loaded"`)
	assert.Contains(t, w.Body.String(), "Meena Joshi")
}

func TestPostReviewValidationStatus(t *testing.T) {
	router := newReviewRouter(&fakeReviewRepo{})

	w := doJSON(t, router, http.MethodPost, "/api/reviews", gin.H{"author": "", "content": "hi"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostReviewInsertFailureStatus(t *testing.T) {
	router := newReviewRouter(&fakeReviewRepo{err: errors.New("connection refused")})

	w := doJSON(t, router, http.MethodPost, "/api/reviews", gin.H{
		"author":  "Meena",
		"content": "Nice stay.",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
