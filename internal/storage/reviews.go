package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hoanghai1803/bookden/internal/models"
)

// ListReviews returns the reviews for a book, newest first.
func (s *Store) ListReviews(ctx context.Context, bookID string) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, book_id, user_id, user_name, rating, comment, created_at
		FROM reviews WHERE book_id = ? ORDER BY created_at DESC, id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var (
			r         models.Review
			userName  sql.NullString
			comment   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.BookID, &r.UserID, &userName, &r.Rating, &comment, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning review row: %w", err)
		}
		r.UserName = userName.String
		r.Comment = comment.String
		r.CreatedAt = parseTime(createdAt)
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review rows: %w", err)
	}
	return reviews, nil
}

// CreateReview inserts a review. The caller assigns id and timestamp.
func (s *Store) CreateReview(ctx context.Context, r models.Review) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reviews (id, book_id, user_id, user_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.BookID, r.UserID, nullableString(r.UserName), r.Rating,
		nullableString(r.Comment), formatTime(r.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting review: %w", err)
	}
	return nil
}
