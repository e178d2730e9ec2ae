package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hoanghai1803/bookden/internal/models"
)

// readingListsResponse is the list envelope returned by GET /reading-lists.
type readingListsResponse struct {
	Lists []models.ReadingList `json:"lists"`
}

// readingListUpdate is the PUT body: the acting user's id alongside the
// partial payload, so the service can enforce ownership.
type readingListUpdate struct {
	UserID string `json:"userId"`
	models.ReadingListPatch
}

// ListReadingLists fetches the reading lists for the given user.
func (c *Client) ListReadingLists(ctx context.Context, userID string) ([]models.ReadingList, error) {
	q := url.Values{"userId": {userID}}
	var res readingListsResponse
	if err := c.do(ctx, http.MethodGet, "/reading-lists", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Lists, nil
}

// GetReadingList fetches a single reading list scoped to its owner.
func (c *Client) GetReadingList(ctx context.Context, id, userID string) (*models.ReadingList, error) {
	q := url.Values{"userId": {userID}}
	var list models.ReadingList
	if err := c.do(ctx, http.MethodGet, "/reading-lists/"+url.PathEscape(id), q, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateReadingList submits a new reading list. The store assigns id and
// timestamps; any values on the input are ignored.
func (c *Client) CreateReadingList(ctx context.Context, list models.ReadingList) (*models.ReadingList, error) {
	list.ID = ""
	var created models.ReadingList
	if err := c.do(ctx, http.MethodPost, "/reading-lists", nil, list, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReadingList submits a partial update for a reading list on behalf of
// the given user.
func (c *Client) UpdateReadingList(ctx context.Context, id, userID string, patch models.ReadingListPatch) (*models.ReadingList, error) {
	body := readingListUpdate{UserID: userID, ReadingListPatch: patch}
	var updated models.ReadingList
	if err := c.do(ctx, http.MethodPut, "/reading-lists/"+url.PathEscape(id), nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReadingList removes a reading list scoped to its owner.
func (c *Client) DeleteReadingList(ctx context.Context, id, userID string) error {
	q := url.Values{"userId": {userID}}
	return c.do(ctx, http.MethodDelete, "/reading-lists/"+url.PathEscape(id), q, nil, nil)
}
