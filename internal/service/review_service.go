package service

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/tourism-backend-go/internal/crowd"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/repository"
)

// Review bounds
const (
	minCommentLength = 3
	maxCommentLength = 900
	maxReviewPhotos  = 6

	defaultReviewLimit = 25
	maxReviewLimit     = 120
)

// ReviewService stores reviews and serves rating aggregates
type ReviewService struct {
	reviews *repository.ReviewRepository
	places  *repository.PlaceRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews *repository.ReviewRepository, places *repository.PlaceRepository) *ReviewService {
	return &ReviewService{reviews: reviews, places: places}
}

// SubmitReviewInput carries a review submission
type SubmitReviewInput struct {
	PlaceID       string
	ReviewerAlias string
	Rating        int
	Comment       string
	Photos        []string
}

// SubmitResult confirms a stored review with the updated summary
type SubmitResult struct {
	Review  models.Review        `json:"review"`
	Summary models.ReviewSummary `json:"summary"`
}

// Submit validates and stores a review for an active place
func (s *ReviewService) Submit(ctx context.Context, input SubmitReviewInput) (*SubmitResult, error) {
	place, err := s.places.GetByID(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}
	if !place.IsActive {
		return nil, repository.ErrNotFound
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}

	comment := strings.TrimSpace(input.Comment)
	if len(comment) < minCommentLength {
		return nil, invalidf("comment must be at least %d characters", minCommentLength)
	}
	if len(comment) > maxCommentLength {
		return nil, invalidf("comment is too long")
	}

	photos, err := normalizePhotos(input.Photos)
	if err != nil {
		return nil, err
	}

	alias := strings.TrimSpace(input.ReviewerAlias)
	if alias == "" {
		alias = generateReviewerAlias()
	}

	review := &models.Review{
		ID:            uuid.NewString(),
		PlaceID:       place.ID,
		ReviewerAlias: alias,
		Rating:        input.Rating,
		Comment:       comment,
		Photos:        photos,
		CreatedAt:     time.Now().Unix(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	summary, err := s.reviews.SummaryForPlace(ctx, place.ID)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{Review: *review, Summary: summary}, nil
}

// Bundle returns a place's review summary, star breakdown, and latest
// reviews. The limit is clamped to [1, 120]; zero means the default.
func (s *ReviewService) Bundle(ctx context.Context, placeID string, limit int) (*models.PlaceSummary, *models.ReviewBundle, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, nil, err
	}
	if !place.IsActive {
		return nil, nil, repository.ErrNotFound
	}

	if limit == 0 {
		limit = defaultReviewLimit
	}
	limit = crowd.ClampInt(limit, 1, maxReviewLimit)

	bundle := &models.ReviewBundle{}
	if bundle.Summary, err = s.reviews.SummaryForPlace(ctx, place.ID); err != nil {
		return nil, nil, err
	}
	if bundle.Breakdown, err = s.reviews.RatingBreakdown(ctx, place.ID); err != nil {
		return nil, nil, err
	}
	if bundle.Latest, err = s.reviews.Latest(ctx, place.ID, limit); err != nil {
		return nil, nil, err
	}

	summary := place.Summary()
	return &summary, bundle, nil
}

func normalizePhotos(photos []string) ([]string, error) {
	cleaned := make([]string, 0, maxReviewPhotos)
	for _, photo := range photos {
		trimmed := strings.TrimSpace(photo)
		if trimmed == "" {
			continue
		}
		if len(cleaned) == maxReviewPhotos {
			break
		}
		parsed, err := url.Parse(trimmed)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return nil, invalidf("each photo must be a valid image URL (http/https)")
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned, nil
}

func generateReviewerAlias() string {
	return fmt.Sprintf("Traveler-%d", 1000+rand.Intn(9000))
}
