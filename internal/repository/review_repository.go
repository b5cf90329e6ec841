package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/tourism-backend-go/internal/models"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, place_id, reviewer_alias, rating, comment, photos, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.PlaceID,
		review.ReviewerAlias,
		review.Rating,
		review.Comment,
		joinPhotos(review.Photos),
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// SummaryForPlace computes the rating aggregate for one place
func (r *ReviewRepository) SummaryForPlace(ctx context.Context, placeID string) (models.ReviewSummary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE place_id = ?
	`

	var summary models.ReviewSummary
	err := r.db.QueryRowContext(ctx, query, placeID).Scan(&summary.AverageRating, &summary.TotalReviews)
	if err != nil {
		return models.ReviewSummary{}, fmt.Errorf("failed to summarize reviews: %w", err)
	}
	return summary, nil
}

// SummariesByPlace computes the rating aggregate for every reviewed place
func (r *ReviewRepository) SummariesByPlace(ctx context.Context) (map[string]models.ReviewSummary, error) {
	query := `
		SELECT place_id, AVG(rating), COUNT(*)
		FROM reviews
		GROUP BY place_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reviews: %w", err)
	}
	defer rows.Close()

	summaries := make(map[string]models.ReviewSummary)
	for rows.Next() {
		var placeID string
		var summary models.ReviewSummary
		if err := rows.Scan(&placeID, &summary.AverageRating, &summary.TotalReviews); err != nil {
			return nil, fmt.Errorf("failed to scan review summary: %w", err)
		}
		summaries[placeID] = summary
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate review summaries: %w", err)
	}
	return summaries, nil
}

// RatingBreakdown counts a place's reviews per star rating
func (r *ReviewRepository) RatingBreakdown(ctx context.Context, placeID string) (map[int]int, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE place_id = ?
		GROUP BY rating
	`

	rows, err := r.db.QueryContext(ctx, query, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to break down ratings: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[int]int, 5)
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rating bucket: %w", err)
		}
		breakdown[rating] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rating buckets: %w", err)
	}
	return breakdown, nil
}

// Latest lists a place's most recent reviews
func (r *ReviewRepository) Latest(ctx context.Context, placeID string, limit int) ([]models.Review, error) {
	query := `
		SELECT id, place_id, reviewer_alias, rating, comment, photos, created_at
		FROM reviews
		WHERE place_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, placeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, limit)
	for rows.Next() {
		var review models.Review
		var photos string
		err := rows.Scan(
			&review.ID,
			&review.PlaceID,
			&review.ReviewerAlias,
			&review.Rating,
			&review.Comment,
			&photos,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		review.Photos = splitPhotos(photos)
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return reviews, nil
}

// CountAll counts all reviews
func (r *ReviewRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

// Photo URLs are newline-joined; commas are legal inside URLs
func joinPhotos(photos []string) string {
	return strings.Join(photos, "\n")
}

func splitPhotos(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, "\n")
}
