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

// readingListUpdate mirrors the adapter's PUT body: owner id plus patch.
type readingListUpdate struct {
	UserID string `json:"userId"`
	models.ReadingListPatch
}

// listReadingLists handles GET /api/reading-lists?userId=.
func listReadingLists(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		lists, err := store.ListReadingLists(r.Context(), userID)
		if err != nil {
			slog.Error("failed to list reading lists", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to list reading lists")
			return
		}
		if lists == nil {
			lists = []models.ReadingList{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"lists": lists})
	}
}

// getReadingList handles GET /api/reading-lists/{id}?userId=.
func getReadingList(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		userID := r.URL.Query().Get("userId")

		list, err := store.GetReadingList(r.Context(), id, userID)
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "reading list not found")
			return
		}
		if err != nil {
			slog.Error("failed to get reading list", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get reading list")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// createReadingList handles POST /api/reading-lists. The stub assigns id
// and timestamps.
func createReadingList(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var list models.ReadingList
		if !decodeBody(w, r, &list) {
			return
		}
		if list.UserID == "" || list.Name == "" {
			writeError(w, http.StatusBadRequest, "userId and name are required")
			return
		}

		now := time.Now().UTC()
		list.ID = uuid.NewString()
		list.CreatedAt = now
		list.UpdatedAt = now
		if list.BookIDs == nil {
			list.BookIDs = []string{}
		}

		if err := store.CreateReadingList(r.Context(), list); err != nil {
			slog.Error("failed to create reading list", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create reading list")
			return
		}
		writeJSON(w, http.StatusCreated, list)
	}
}

// updateReadingList handles PUT /api/reading-lists/{id}. The body carries
// the owner id and a partial payload; the update timestamp is refreshed.
func updateReadingList(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body readingListUpdate
		if !decodeBody(w, r, &body) {
			return
		}

		list, err := store.GetReadingList(r.Context(), id, body.UserID)
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "reading list not found")
			return
		}
		if err != nil {
			slog.Error("failed to load reading list for update", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update reading list")
			return
		}

		body.ReadingListPatch.Apply(list)
		list.UpdatedAt = time.Now().UTC()

		if err := store.UpdateReadingList(r.Context(), *list); err != nil {
			slog.Error("failed to update reading list", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update reading list")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// deleteReadingList handles DELETE /api/reading-lists/{id}?userId=.
func deleteReadingList(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		userID := r.URL.Query().Get("userId")

		err := store.DeleteReadingList(r.Context(), id, userID)
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "reading list not found")
			return
		}
		if err != nil {
			slog.Error("failed to delete reading list", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to delete reading list")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
