package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/hoanghai1803/bookden/internal/models"
)

func TestBookCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	book := models.Book{
		ID:            "b1",
		Title:         "Dune",
		Author:        "Frank Herbert",
		Description:   "Desert planet politics.",
		Genre:         "Science Fiction",
		PublishedYear: 1965,
	}
	if err := store.CreateBook(ctx, book); err != nil {
		t.Fatalf("CreateBook() error: %v", err)
	}

	got, err := store.GetBook(ctx, "b1")
	if err != nil {
		t.Fatalf("GetBook() error: %v", err)
	}
	if *got != book {
		t.Errorf("GetBook() = %+v, want %+v", *got, book)
	}

	book.Title = "Dune (Annotated)"
	book.Genre = ""
	if err := store.UpdateBook(ctx, book); err != nil {
		t.Fatalf("UpdateBook() error: %v", err)
	}
	got, err = store.GetBook(ctx, "b1")
	if err != nil {
		t.Fatalf("GetBook() after update error: %v", err)
	}
	if got.Title != "Dune (Annotated)" {
		t.Errorf("Title = %q, want updated title", got.Title)
	}
	if got.Genre != "" {
		t.Errorf("Genre = %q, want cleared", got.Genre)
	}

	if err := store.DeleteBook(ctx, "b1"); err != nil {
		t.Fatalf("DeleteBook() error: %v", err)
	}
	if _, err := store.GetBook(ctx, "b1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBook() after delete error = %v, want ErrNotFound", err)
	}
}

func TestListBooks_OrderedByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if err := store.CreateBook(ctx, models.Book{ID: id, Title: "T " + id, Author: "A"}); err != nil {
			t.Fatalf("CreateBook(%q) error: %v", id, err)
		}
	}

	books, err := store.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks() error: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("got %d books, want 3", len(books))
	}
	for i, want := range []string{"a", "b", "c"} {
		if books[i].ID != want {
			t.Errorf("books[%d].ID = %q, want %q", i, books[i].ID, want)
		}
	}
}

func TestGetBook_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetBook(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBook() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateBook_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.UpdateBook(context.Background(), models.Book{ID: "missing", Title: "T", Author: "A"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateBook() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteBook_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteBook(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteBook() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteBook_CascadesReviews(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateBook(ctx, models.Book{ID: "b1", Title: "T", Author: "A"}); err != nil {
		t.Fatalf("CreateBook() error: %v", err)
	}
	if err := store.CreateReview(ctx, models.Review{ID: "r1", BookID: "b1", UserID: "1", Rating: 5}); err != nil {
		t.Fatalf("CreateReview() error: %v", err)
	}

	if err := store.DeleteBook(ctx, "b1"); err != nil {
		t.Fatalf("DeleteBook() error: %v", err)
	}

	reviews, err := store.ListReviews(ctx, "b1")
	if err != nil {
		t.Fatalf("ListReviews() error: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("got %d reviews after book delete, want 0 (cascade)", len(reviews))
	}
}
