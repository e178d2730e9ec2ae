package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hoanghai1803/bookden/internal/models"
)

// ListReadingLists returns the reading lists owned by the given user,
// ordered by creation time.
func (s *Store) ListReadingLists(ctx context.Context, userID string) ([]models.ReadingList, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, description, book_ids, created_at, updated_at
		FROM reading_lists WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying reading lists: %w", err)
	}
	defer rows.Close()

	var lists []models.ReadingList
	for rows.Next() {
		l, err := scanReadingList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reading list rows: %w", err)
	}
	return lists, nil
}

// GetReadingList returns the list with the given id and owner, or
// ErrNotFound. Scoping by owner in the query keeps one user's lists
// invisible to another.
func (s *Store) GetReadingList(ctx context.Context, id, userID string) (*models.ReadingList, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, description, book_ids, created_at, updated_at
		FROM reading_lists WHERE id = ? AND user_id = ?`, id, userID)

	l, err := scanReadingList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateReadingList inserts a reading list. The caller assigns id and
// timestamps.
func (s *Store) CreateReadingList(ctx context.Context, l models.ReadingList) error {
	bookIDs, err := json.Marshal(l.BookIDs)
	if err != nil {
		return fmt.Errorf("encoding book ids: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reading_lists (id, user_id, name, description, book_ids, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.UserID, l.Name, nullableString(l.Description), string(bookIDs),
		formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting reading list: %w", err)
	}
	return nil
}

// UpdateReadingList replaces the mutable fields of a list, scoped to its
// owner, or returns ErrNotFound.
func (s *Store) UpdateReadingList(ctx context.Context, l models.ReadingList) error {
	bookIDs, err := json.Marshal(l.BookIDs)
	if err != nil {
		return fmt.Errorf("encoding book ids: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE reading_lists
		SET name = ?, description = ?, book_ids = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		l.Name, nullableString(l.Description), string(bookIDs),
		formatTime(l.UpdatedAt), l.ID, l.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating reading list: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReadingList removes a list scoped to its owner.
func (s *Store) DeleteReadingList(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM reading_lists WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting reading list: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanReadingList reads one reading list row from *sql.Row or *sql.Rows.
func scanReadingList(row interface{ Scan(dest ...any) error }) (models.ReadingList, error) {
	var (
		l           models.ReadingList
		description sql.NullString
		bookIDs     string
		createdAt   string
		updatedAt   string
	)
	if err := row.Scan(&l.ID, &l.UserID, &l.Name, &description, &bookIDs, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return l, err
		}
		return l, fmt.Errorf("scanning reading list row: %w", err)
	}
	l.Description = description.String
	if err := json.Unmarshal([]byte(bookIDs), &l.BookIDs); err != nil {
		return l, fmt.Errorf("decoding book ids for list %s: %w", l.ID, err)
	}
	if l.BookIDs == nil {
		l.BookIDs = []string{}
	}
	l.CreatedAt = parseTime(createdAt)
	l.UpdatedAt = parseTime(updatedAt)
	return l, nil
}
