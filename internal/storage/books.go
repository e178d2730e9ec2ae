package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hoanghai1803/bookden/internal/models"
)

// ListBooks returns every book ordered by id.
func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, cover_image, description, genre, published_year
		FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating book rows: %w", err)
	}
	return books, nil
}

// GetBook returns the book with the given id, or ErrNotFound.
func (s *Store) GetBook(ctx context.Context, id string) (*models.Book, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, cover_image, description, genre, published_year
		FROM books WHERE id = ?`, id)

	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBook inserts a book. The caller assigns the id.
func (s *Store) CreateBook(ctx context.Context, b models.Book) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO books (id, title, author, cover_image, description, genre, published_year)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Author, nullableString(b.CoverImage),
		nullableString(b.Description), nullableString(b.Genre), b.PublishedYear,
	)
	if err != nil {
		return fmt.Errorf("inserting book: %w", err)
	}
	return nil
}

// UpdateBook replaces the descriptive fields of a book, or returns
// ErrNotFound if no row has its id.
func (s *Store) UpdateBook(ctx context.Context, b models.Book) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE books
		SET title = ?, author = ?, cover_image = ?, description = ?, genre = ?, published_year = ?
		WHERE id = ?`,
		b.Title, b.Author, nullableString(b.CoverImage),
		nullableString(b.Description), nullableString(b.Genre), b.PublishedYear, b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBook removes a book (and, via foreign key, its reviews).
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanBook reads one book row from either *sql.Row or *sql.Rows.
func scanBook(row interface{ Scan(dest ...any) error }) (models.Book, error) {
	var (
		b           models.Book
		coverImage  sql.NullString
		description sql.NullString
		genre       sql.NullString
		year        sql.NullInt64
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &coverImage, &description, &genre, &year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, err
		}
		return b, fmt.Errorf("scanning book row: %w", err)
	}
	b.CoverImage = coverImage.String
	b.Description = description.String
	b.Genre = genre.String
	b.PublishedYear = int(year.Int64)
	return b, nil
}
