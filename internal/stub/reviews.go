package stub

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hoanghai1803/bookden/internal/models"
	"github.com/hoanghai1803/bookden/internal/storage"
)

// listReviews handles GET /api/books/{id}/reviews.
func listReviews(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID := chi.URLParam(r, "id")
		reviews, err := store.ListReviews(r.Context(), bookID)
		if err != nil {
			slog.Error("failed to list reviews", "bookId", bookID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to list reviews")
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
	}
}

// createReview handles POST /api/books/{id}/reviews. Reviews are
// append-only; the stub assigns id and creation timestamp.
func createReview(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID := chi.URLParam(r, "id")

		var review models.Review
		if !decodeBody(w, r, &review) {
			return
		}
		if review.UserID == "" {
			writeError(w, http.StatusBadRequest, "userId is required")
			return
		}
		if review.Rating < 1 || review.Rating > 5 {
			writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
			return
		}

		if _, err := store.GetBook(r.Context(), bookID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "book not found")
				return
			}
			slog.Error("failed to load book for review", "bookId", bookID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create review")
			return
		}

		review.ID = uuid.NewString()
		review.BookID = bookID
		review.CreatedAt = time.Now().UTC()

		if err := store.CreateReview(r.Context(), review); err != nil {
			slog.Error("failed to create review", "bookId", bookID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create review")
			return
		}
		writeJSON(w, http.StatusCreated, review)
	}
}
