package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hoanghai1803/bookden/internal/fixture"
)

// SeedFixture populates an empty database with the synthetic dataset so a
// freshly started stub serves the same records the client falls back to.
// A database that already has books is left untouched.
func (s *Store) SeedFixture(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return fmt.Errorf("counting books: %w", err)
	}
	if count > 0 {
		return nil
	}

	ds := fixture.Default()
	for _, b := range ds.Books() {
		if err := s.CreateBook(ctx, b); err != nil {
			return fmt.Errorf("seeding book %s: %w", b.ID, err)
		}
	}

	for _, l := range ds.AllReadingLists() {
		if err := s.CreateReadingList(ctx, l); err != nil {
			return fmt.Errorf("seeding reading list %s: %w", l.ID, err)
		}
	}

	slog.Info("seeded stub database from fixture")
	return nil
}
