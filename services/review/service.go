// File: services/review/service.go
package review

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	reviewRepo "sainandadeep/database/repository/review"
	"sainandadeep/models"
	"sainandadeep/services/catalog"
	"sainandadeep/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const feedCacheKey = "reviews:feed"

// DefaultReviewService loads reviews from the store with a static testimonial
// fallback, and writes new submissions through. Cache is optional; when set,
// successfully loaded feeds are cached briefly. The fallback is never cached.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

// Load returns all reviews newest first. On store failure or an empty result
// it substitutes the seed testimonials; the failure is logged only, never
// surfaced to the guest.
func (s *DefaultReviewService) Load(ctx context.Context) *Feed {
	logger := utils.GetLogger()

	if feed := s.cachedFeed(ctx); feed != nil {
		return feed
	}

	reviews, err := s.Repo.GetAll(ctx)
	if err != nil {
		logger.Warn("review fetch failed, using static testimonials", zap.Error(err))
		return &Feed{Source: SourceFallback, Reviews: catalog.SeedTestimonials()}
	}
	if len(reviews) == 0 {
		return &Feed{Source: SourceFallback, Reviews: catalog.SeedTestimonials()}
	}

	feed := &Feed{Source: SourceLoaded, Reviews: reviews}
	s.cacheFeed(ctx, feed)
	return feed
}

// Submit validates and persists a new review, then reloads the full feed.
// There is no optimistic insert; the list only reflects what the reload
// returns.
func (s *DefaultReviewService) Submit(ctx context.Context, input ReviewInput) (*Feed, error) {
	author := strings.TrimSpace(input.Author)
	content := strings.TrimSpace(input.Content)
	if author == "" || content == "" {
		return nil, NewReviewError(CodeInvalidReview, "Please provide your name and your review text.")
	}

	rating := input.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	record := models.Review{
		Author:  author,
		Rating:  rating,
		Content: content,
		Avatar:  AvatarURL(author),
	}
	if _, err := s.Repo.Create(ctx, record); err != nil {
		utils.GetLogger().Error("review insert failed", zap.String("author", author), zap.Error(err))
		return nil, NewReviewError(CodeConnectionFailure, "Your review could not be saved. Please try again.")
	}

	s.invalidateCache(ctx)
	return s.Load(ctx), nil
}

// AvatarURL derives a deterministic avatar image URL from the author's name.
func AvatarURL(author string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(author) + "&background=random&color=fff"
}

func (s *DefaultReviewService) cachedFeed(ctx context.Context) *Feed {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, feedCacheKey).Result()
	if err != nil {
		return nil
	}
	var feed Feed
	if err := json.Unmarshal([]byte(data), &feed); err != nil {
		return nil
	}
	return &feed
}

func (s *DefaultReviewService) cacheFeed(ctx context.Context, feed *Feed) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, feedCacheKey, b, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("review feed cache write failed", zap.Error(err))
	}
}

func (s *DefaultReviewService) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, feedCacheKey).Err(); err != nil {
		utils.GetLogger().Debug("review feed cache invalidation failed", zap.Error(err))
	}
}
