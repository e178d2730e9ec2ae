package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/hoanghai1803/bookden/internal/fixture"
	"github.com/hoanghai1803/bookden/internal/models"
	"github.com/hoanghai1803/bookden/internal/remote"
)

// errDown simulates an unreachable catalog service, classified the way the
// transport adapter classifies it.
var errDown = fmt.Errorf("%w: connection refused", remote.ErrUnavailable)

// fakeAPI implements CatalogAPI with per-method function fields. Methods with
// a nil field fail the test if called.
type fakeAPI struct {
	t *testing.T

	listBooks  func(ctx context.Context) ([]models.Book, error)
	getBook    func(ctx context.Context, id string) (*models.Book, error)
	createBook func(ctx context.Context, book models.Book) (*models.Book, error)
	updateBook func(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error)
	deleteBook func(ctx context.Context, id string) error

	listLists  func(ctx context.Context, userID string) ([]models.ReadingList, error)
	getList    func(ctx context.Context, id, userID string) (*models.ReadingList, error)
	createList func(ctx context.Context, list models.ReadingList) (*models.ReadingList, error)
	updateList func(ctx context.Context, id, userID string, patch models.ReadingListPatch) (*models.ReadingList, error)
	deleteList func(ctx context.Context, id, userID string) error

	listReviews  func(ctx context.Context, bookID string) ([]models.Review, error)
	createReview func(ctx context.Context, review models.Review) (*models.Review, error)
}

func (f *fakeAPI) ListBooks(ctx context.Context) ([]models.Book, error) {
	if f.listBooks == nil {
		f.t.Fatal("unexpected ListBooks call")
	}
	return f.listBooks(ctx)
}

func (f *fakeAPI) GetBook(ctx context.Context, id string) (*models.Book, error) {
	if f.getBook == nil {
		f.t.Fatal("unexpected GetBook call")
	}
	return f.getBook(ctx, id)
}

func (f *fakeAPI) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	if f.createBook == nil {
		f.t.Fatal("unexpected CreateBook call")
	}
	return f.createBook(ctx, book)
}

func (f *fakeAPI) UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	if f.updateBook == nil {
		f.t.Fatal("unexpected UpdateBook call")
	}
	return f.updateBook(ctx, id, patch)
}

func (f *fakeAPI) DeleteBook(ctx context.Context, id string) error {
	if f.deleteBook == nil {
		f.t.Fatal("unexpected DeleteBook call")
	}
	return f.deleteBook(ctx, id)
}

func (f *fakeAPI) ListReadingLists(ctx context.Context, userID string) ([]models.ReadingList, error) {
	if f.listLists == nil {
		f.t.Fatal("unexpected ListReadingLists call")
	}
	return f.listLists(ctx, userID)
}

func (f *fakeAPI) GetReadingList(ctx context.Context, id, userID string) (*models.ReadingList, error) {
	if f.getList == nil {
		f.t.Fatal("unexpected GetReadingList call")
	}
	return f.getList(ctx, id, userID)
}

func (f *fakeAPI) CreateReadingList(ctx context.Context, list models.ReadingList) (*models.ReadingList, error) {
	if f.createList == nil {
		f.t.Fatal("unexpected CreateReadingList call")
	}
	return f.createList(ctx, list)
}

func (f *fakeAPI) UpdateReadingList(ctx context.Context, id, userID string, patch models.ReadingListPatch) (*models.ReadingList, error) {
	if f.updateList == nil {
		f.t.Fatal("unexpected UpdateReadingList call")
	}
	return f.updateList(ctx, id, userID, patch)
}

func (f *fakeAPI) DeleteReadingList(ctx context.Context, id, userID string) error {
	if f.deleteList == nil {
		f.t.Fatal("unexpected DeleteReadingList call")
	}
	return f.deleteList(ctx, id, userID)
}

func (f *fakeAPI) ListReviews(ctx context.Context, bookID string) ([]models.Review, error) {
	if f.listReviews == nil {
		f.t.Fatal("unexpected ListReviews call")
	}
	return f.listReviews(ctx, bookID)
}

func (f *fakeAPI) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	if f.createReview == nil {
		f.t.Fatal("unexpected CreateReview call")
	}
	return f.createReview(ctx, review)
}

// newTestRepo builds a Repository over the given fake and the canonical
// fixture dataset.
func newTestRepo(t *testing.T, api *fakeAPI, policy DeletePolicy) *Repository {
	t.Helper()
	api.t = t
	return New(api, fixture.Default(), policy)
}

func TestNew_DefaultsToBestEffort(t *testing.T) {
	r := New(&fakeAPI{}, fixture.Default(), "")
	if r.deletePolicy != DeleteBestEffort {
		t.Errorf("deletePolicy = %q, want %q", r.deletePolicy, DeleteBestEffort)
	}
}
