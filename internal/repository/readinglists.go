package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hoanghai1803/bookden/internal/models"
)

// ListReadingLists returns the given user's reading lists, falling back to
// the user's fixture lists when the service is unreachable. Successful
// responses are additionally filtered by owner so a permissive backend (or
// the stub) cannot leak another user's lists.
func (r *Repository) ListReadingLists(ctx context.Context, userID string) ([]models.ReadingList, error) {
	lists, err := r.api.ListReadingLists(ctx, userID)
	if err != nil {
		slog.Warn("catalog unavailable, serving fixture reading lists", "userId", userID, "error", err)
		return r.fb.ReadingLists(userID), nil
	}

	owned := make([]models.ReadingList, 0, len(lists))
	for _, l := range lists {
		if l.UserID == userID {
			owned = append(owned, l)
		}
	}
	return owned, nil
}

// GetReadingList returns one reading list scoped to its owner. A 404 is
// ErrNotFound with no fallback; a failure falls back to the fixture list
// with the same id and owner.
func (r *Repository) GetReadingList(ctx context.Context, id, userID string) (*models.ReadingList, error) {
	list, err := r.api.GetReadingList(ctx, id, userID)
	switch {
	case err == nil:
		return list, nil
	case absent(err):
		return nil, ErrNotFound
	}

	slog.Warn("catalog unavailable, serving fixture reading list", "id", id, "userId", userID, "error", err)
	if l, ok := r.fb.ReadingListByID(id, userID); ok {
		return l, nil
	}
	return nil, ErrNotFound
}

// CreateReadingList submits a new reading list. On failure the submitted
// payload is returned with a synthesized id and current timestamps; nothing
// is persisted anywhere.
func (r *Repository) CreateReadingList(ctx context.Context, list models.ReadingList) (*models.ReadingList, error) {
	created, err := r.api.CreateReadingList(ctx, list)
	if err == nil {
		return created, nil
	}

	slog.Warn("catalog unavailable, synthesizing created reading list", "userId", list.UserID, "error", err)
	now := time.Now().UTC()
	list.ID = newLocalID()
	list.CreatedAt = now
	list.UpdatedAt = now
	return &list, nil
}

// UpdateReadingList submits a partial update on behalf of the given user.
// On failure the patch is merged over the owner-scoped fixture list (or a
// placeholder) and the update timestamp is refreshed.
func (r *Repository) UpdateReadingList(ctx context.Context, id, userID string, patch models.ReadingListPatch) (*models.ReadingList, error) {
	updated, err := r.api.UpdateReadingList(ctx, id, userID, patch)
	if err == nil {
		return updated, nil
	}

	slog.Warn("catalog unavailable, synthesizing updated reading list", "id", id, "userId", userID, "error", err)
	base, ok := r.fb.ReadingListByID(id, userID)
	if !ok {
		base = &models.ReadingList{ID: id, UserID: userID}
	}
	patch.Apply(base)
	base.UpdatedAt = time.Now().UTC()
	return base, nil
}

// DeleteReadingList removes a reading list scoped to its owner. A failed
// delete follows the configured DeletePolicy.
func (r *Repository) DeleteReadingList(ctx context.Context, id, userID string) error {
	err := r.api.DeleteReadingList(ctx, id, userID)
	if err == nil {
		return nil
	}
	if r.deletePolicy == DeleteStrict {
		return fmt.Errorf("deleting reading list %s: %w", id, err)
	}
	slog.Warn("catalog unavailable, reporting delete as completed", "id", id, "userId", userID, "error", err)
	return nil
}
