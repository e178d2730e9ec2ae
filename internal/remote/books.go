package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hoanghai1803/bookden/internal/models"
)

// booksResponse is the list envelope returned by GET /books.
type booksResponse struct {
	Books []models.Book `json:"books"`
}

// ListBooks fetches the full catalog.
func (c *Client) ListBooks(ctx context.Context) ([]models.Book, error) {
	var res booksResponse
	if err := c.do(ctx, http.MethodGet, "/books", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Books, nil
}

// GetBook fetches a single catalog entry by id.
func (c *Client) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook submits a new catalog entry. The store assigns the id; any id
// on the input is ignored.
func (c *Client) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	book.ID = ""
	var created models.Book
	if err := c.do(ctx, http.MethodPost, "/books", nil, book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBook submits a partial update for a catalog entry.
func (c *Client) UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	var updated models.Book
	if err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), nil, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook removes a catalog entry.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil, nil)
}
