package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoanghai1803/bookden/internal/models"
	"golang.org/x/sync/errgroup"
)

// Suggester fetches raw AI suggestions. Implemented by *Client.
type Suggester interface {
	Fetch(ctx context.Context, userID, genre string, limit int) ([]models.Recommendation, error)
}

// Catalog is the slice of the repository the reconciler needs. The catalog
// fetch inherits the repository's fallback policy, so reconciliation keeps
// working against fixture data during outages.
type Catalog interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
}

// Reconciler cross-references free-text AI suggestions against the catalog
// to decide, per suggestion, whether it corresponds to an owned entry or
// must be presented as an external suggestion.
type Reconciler struct {
	suggester Suggester
	catalog   Catalog
}

// NewReconciler creates a Reconciler over the given suggestion source and
// catalog.
func NewReconciler(s Suggester, c Catalog) *Reconciler {
	return &Reconciler{suggester: s, catalog: c}
}

// Recommend fetches suggestions and the catalog concurrently, joins both,
// and runs the matching pass. The result preserves suggestion order and has
// exactly one entry per suggestion returned by the endpoint.
func (r *Reconciler) Recommend(ctx context.Context, userID, genre string, limit int) ([]models.EnrichedRecommendation, error) {
	var (
		recs  []models.Recommendation
		books []models.Book
	)

	// The two fetches are independent; matching needs both, so they are
	// joined before the pass begins.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recs, err = r.suggester.Fetch(gctx, userID, genre, limit)
		if err != nil {
			return fmt.Errorf("fetching recommendations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		books, err = r.catalog.ListBooks(gctx)
		if err != nil {
			return fmt.Errorf("listing catalog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedRecommendation, 0, len(recs))
	for _, rec := range recs {
		match := matchCatalog(books, rec)
		enriched = append(enriched, models.EnrichedRecommendation{
			Recommendation: rec,
			MatchedBook:    match,
			InDatabase:     match != nil,
		})
	}
	return enriched, nil
}

// matchCatalog returns a copy of the first catalog entry, in catalog order,
// whose title contains the suggestion's title (or vice versa,
// case-insensitively), or whose author string is exactly equal to the
// suggestion's author ignoring case. Title containment is the primary
// channel; free-text AI output carries no external identifiers, so this
// conservative two-sided heuristic is the whole signal. Blank titles skip
// the containment channel, which would otherwise match every entry.
func matchCatalog(books []models.Book, rec models.Recommendation) *models.Book {
	title := strings.ToLower(strings.TrimSpace(rec.Title))
	author := strings.TrimSpace(rec.Author)

	for i := range books {
		bookTitle := strings.ToLower(books[i].Title)
		if title != "" && bookTitle != "" &&
			(strings.Contains(bookTitle, title) || strings.Contains(title, bookTitle)) {
			b := books[i]
			return &b
		}
		if author != "" && strings.EqualFold(books[i].Author, author) {
			b := books[i]
			return &b
		}
	}
	return nil
}
