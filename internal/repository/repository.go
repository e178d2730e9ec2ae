// Package repository provides the resilient data-access layer consumed by UI
// collaborators. Every read operation transparently substitutes the
// synthetic fixture dataset on transport/server failure; write operations
// synthesize a locally-plausible result instead. Callers never branch on
// failure mode: fallback substitution is silent, and the application stays
// usable during backend outages.
//
// Two operations have no fallback policy and propagate failures for the
// caller to display: review creation (this package) and recommendation
// fetching (package recommend).
package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hoanghai1803/bookden/internal/models"
	"github.com/hoanghai1803/bookden/internal/remote"
)

// ErrNotFound is returned when a specific resource does not exist, whether
// the answer came from the live service or the fixture. A missing resource
// is a real answer, not a failure, and never triggers fallback.
var ErrNotFound = errors.New("not found")

// CatalogAPI is the transport surface the repository decorates. It is
// implemented by *remote.Client; implementations must classify absent
// resources as remote.ErrNotFound and everything else as a failure.
type CatalogAPI interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error

	ListReadingLists(ctx context.Context, userID string) ([]models.ReadingList, error)
	GetReadingList(ctx context.Context, id, userID string) (*models.ReadingList, error)
	CreateReadingList(ctx context.Context, list models.ReadingList) (*models.ReadingList, error)
	UpdateReadingList(ctx context.Context, id, userID string, patch models.ReadingListPatch) (*models.ReadingList, error)
	DeleteReadingList(ctx context.Context, id, userID string) error

	ListReviews(ctx context.Context, bookID string) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)
}

// Fallback supplies the synthetic records served while the catalog service
// is unreachable. Implemented by *fixture.Dataset.
type Fallback interface {
	Books() []models.Book
	BookByID(id string) (*models.Book, bool)
	ReadingLists(userID string) []models.ReadingList
	ReadingListByID(id, userID string) (*models.ReadingList, bool)
}

// DeletePolicy controls how delete operations behave when the remote call
// fails. The authoritative store is not cached locally, so neither policy
// can lose real data.
type DeletePolicy string

const (
	// DeleteBestEffort reports a failed delete as completed. This matches
	// the historical UX: the UI moves on and the record reappears once the
	// service recovers.
	DeleteBestEffort DeletePolicy = "best-effort"

	// DeleteStrict propagates the failure to the caller.
	DeleteStrict DeletePolicy = "strict"
)

// Repository is the single API surface for catalog, reading-list and review
// access. It holds no mutable state and is safe for concurrent use.
type Repository struct {
	api          CatalogAPI
	fb           Fallback
	deletePolicy DeletePolicy
}

// New creates a Repository over the given transport and fallback dataset.
// An empty policy selects DeleteBestEffort.
func New(api CatalogAPI, fb Fallback, policy DeletePolicy) *Repository {
	if policy == "" {
		policy = DeleteBestEffort
	}
	return &Repository{api: api, fb: fb, deletePolicy: policy}
}

// absent reports whether err is the transport adapter's "resource does not
// exist" classification rather than a failure.
func absent(err error) bool {
	return errors.Is(err, remote.ErrNotFound)
}

// newLocalID synthesizes an identifier for records created while the
// service is unreachable, mirroring the store's decimal string ids.
func newLocalID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
