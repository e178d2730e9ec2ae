package stub

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hoanghai1803/bookden/internal/models"
	"github.com/hoanghai1803/bookden/internal/storage"
)

// listBooks handles GET /api/books.
func listBooks(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := store.ListBooks(r.Context())
		if err != nil {
			slog.Error("failed to list books", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to list books")
			return
		}
		if books == nil {
			books = []models.Book{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"books": books})
	}
}

// getBook handles GET /api/books/{id}.
func getBook(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		book, err := store.GetBook(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		if err != nil {
			slog.Error("failed to get book", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get book")
			return
		}
		writeJSON(w, http.StatusOK, book)
	}
}

// createBook handles POST /api/books. The stub assigns the id.
func createBook(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var book models.Book
		if !decodeBody(w, r, &book) {
			return
		}
		if book.Title == "" || book.Author == "" {
			writeError(w, http.StatusBadRequest, "title and author are required")
			return
		}

		book.ID = uuid.NewString()
		if err := store.CreateBook(r.Context(), book); err != nil {
			slog.Error("failed to create book", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create book")
			return
		}
		writeJSON(w, http.StatusCreated, book)
	}
}

// updateBook handles PUT /api/books/{id} with a partial payload.
func updateBook(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch models.BookPatch
		if !decodeBody(w, r, &patch) {
			return
		}

		book, err := store.GetBook(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		if err != nil {
			slog.Error("failed to load book for update", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update book")
			return
		}

		patch.Apply(book)
		if err := store.UpdateBook(r.Context(), *book); err != nil {
			slog.Error("failed to update book", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update book")
			return
		}
		writeJSON(w, http.StatusOK, book)
	}
}

// deleteBook handles DELETE /api/books/{id}.
func deleteBook(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := store.DeleteBook(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		if err != nil {
			slog.Error("failed to delete book", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to delete book")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
