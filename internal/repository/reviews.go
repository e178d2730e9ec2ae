package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hoanghai1803/bookden/internal/models"
)

// ListReviews returns the reviews for a catalog entry. The fixture carries
// no reviews, so a failure falls back to an empty set rather than an error.
func (r *Repository) ListReviews(ctx context.Context, bookID string) ([]models.Review, error) {
	reviews, err := r.api.ListReviews(ctx, bookID)
	if err != nil {
		slog.Warn("catalog unavailable, serving empty reviews", "bookId", bookID, "error", err)
		return []models.Review{}, nil
	}
	return reviews, nil
}

// CreateReview appends a review. Review creation has no fallback policy:
// failures propagate for the caller to display.
func (r *Repository) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	created, err := r.api.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("creating review for book %s: %w", review.BookID, err)
	}
	return created, nil
}
