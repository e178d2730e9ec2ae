package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hoanghai1803/bookden/internal/models"
)

// ListBooks returns the full catalog, or the full fixture set when the
// service is unreachable. It never fails.
func (r *Repository) ListBooks(ctx context.Context) ([]models.Book, error) {
	books, err := r.api.ListBooks(ctx)
	if err != nil {
		slog.Warn("catalog unavailable, serving fixture books", "error", err)
		return r.fb.Books(), nil
	}
	return books, nil
}

// GetBook returns one catalog entry. A 404 from the service is ErrNotFound
// with no fallback; a failure falls back to the fixture entry with the same
// id, or ErrNotFound if the fixture has none.
func (r *Repository) GetBook(ctx context.Context, id string) (*models.Book, error) {
	book, err := r.api.GetBook(ctx, id)
	switch {
	case err == nil:
		return book, nil
	case absent(err):
		return nil, ErrNotFound
	}

	slog.Warn("catalog unavailable, serving fixture book", "id", id, "error", err)
	if b, ok := r.fb.BookByID(id); ok {
		return b, nil
	}
	return nil, ErrNotFound
}

// CreateBook submits a new catalog entry. On failure the submitted payload
// is returned with a synthesized id; nothing is persisted anywhere.
func (r *Repository) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	created, err := r.api.CreateBook(ctx, book)
	if err == nil {
		return created, nil
	}

	slog.Warn("catalog unavailable, synthesizing created book", "error", err)
	book.ID = newLocalID()
	return &book, nil
}

// UpdateBook submits a partial update. On failure the patch is merged over
// the fixture entry, or over a placeholder carrying only the id.
func (r *Repository) UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	updated, err := r.api.UpdateBook(ctx, id, patch)
	if err == nil {
		return updated, nil
	}

	slog.Warn("catalog unavailable, synthesizing updated book", "id", id, "error", err)
	base, ok := r.fb.BookByID(id)
	if !ok {
		base = &models.Book{ID: id}
	}
	patch.Apply(base)
	return base, nil
}

// DeleteBook removes a catalog entry. A failed delete follows the
// configured DeletePolicy.
func (r *Repository) DeleteBook(ctx context.Context, id string) error {
	err := r.api.DeleteBook(ctx, id)
	if err == nil {
		return nil
	}
	if r.deletePolicy == DeleteStrict {
		return fmt.Errorf("deleting book %s: %w", id, err)
	}
	slog.Warn("catalog unavailable, reporting delete as completed", "id", id, "error", err)
	return nil
}
