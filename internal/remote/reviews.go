package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hoanghai1803/bookden/internal/models"
)

// reviewsResponse is the list envelope returned by GET /books/{id}/reviews.
type reviewsResponse struct {
	Reviews []models.Review `json:"reviews"`
}

// ListReviews fetches the reviews for a catalog entry.
func (c *Client) ListReviews(ctx context.Context, bookID string) ([]models.Review, error) {
	var res reviewsResponse
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID)+"/reviews", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Reviews, nil
}

// CreateReview appends a review to the book named by review.BookID. The
// store assigns id and creation timestamp.
func (c *Client) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	bookID := review.BookID
	review.ID = ""
	var created models.Review
	if err := c.do(ctx, http.MethodPost, "/books/"+url.PathEscape(bookID)+"/reviews", nil, review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
