// Package stub implements a local stand-in for the remote catalog and
// recommendation services. It serves the same JSON-over-HTTP interface the
// transport adapter consumes, backed by SQLite and seeded from the fixture,
// so the client stack can be developed and exercised without the real
// backend.
package stub

import (
	"github.com/go-chi/chi/v5"
	"github.com/hoanghai1803/bookden/internal/storage"
)

// NewRouter creates the HTTP router serving every catalog route under /api.
func NewRouter(store *storage.Store) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	r.Route("/api", func(api chi.Router) {
		api.Get("/books", listBooks(store))
		api.Post("/books", createBook(store))
		api.Get("/books/{id}", getBook(store))
		api.Put("/books/{id}", updateBook(store))
		api.Delete("/books/{id}", deleteBook(store))

		api.Get("/books/{id}/reviews", listReviews(store))
		api.Post("/books/{id}/reviews", createReview(store))

		api.Get("/reading-lists", listReadingLists(store))
		api.Post("/reading-lists", createReadingList(store))
		api.Get("/reading-lists/{id}", getReadingList(store))
		api.Put("/reading-lists/{id}", updateReadingList(store))
		api.Delete("/reading-lists/{id}", deleteReadingList(store))

		api.Get("/recommendations", getRecommendations())
	})

	return r
}
