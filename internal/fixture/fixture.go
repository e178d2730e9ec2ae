// Package fixture holds the synthetic fallback dataset: a fixed,
// hand-authored catalog and a few reading lists, built once at init and
// never mutated. It is the data source the repository substitutes when the
// remote catalog service is unreachable.
//
// The fixture and the live service are independent data universes; nothing
// here is synchronized with, or persisted to, the authoritative store.
package fixture

import (
	"time"

	"github.com/hoanghai1803/bookden/internal/models"
)

// Dataset is a read-only collection of synthetic records. All accessors
// return defensive copies, so a Dataset is safe for concurrent use and
// callers can never corrupt the fixture.
type Dataset struct {
	books        []models.Book
	readingLists []models.ReadingList
}

var defaultDataset = &Dataset{
	books: []models.Book{
		{
			ID:            "1",
			Title:         "Dune",
			Author:        "Frank Herbert",
			CoverImage:    "https://covers.openlibrary.org/b/id/11481354-L.jpg",
			Description:   "A noble family becomes embroiled in a war for control of the desert planet Arrakis and its spice.",
			Genre:         "Science Fiction",
			PublishedYear: 1965,
		},
		{
			ID:            "2",
			Title:         "The Hobbit",
			Author:        "J.R.R. Tolkien",
			CoverImage:    "https://covers.openlibrary.org/b/id/14627222-L.jpg",
			Description:   "Bilbo Baggins is swept into a quest to reclaim the dwarves' mountain home from the dragon Smaug.",
			Genre:         "Fantasy",
			PublishedYear: 1937,
		},
		{
			ID:            "3",
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			CoverImage:    "https://covers.openlibrary.org/b/id/14619528-L.jpg",
			Description:   "Elizabeth Bennet navigates manners, marriage and Mr. Darcy in Regency England.",
			Genre:         "Romance",
			PublishedYear: 1813,
		},
		{
			ID:            "4",
			Title:         "1984",
			Author:        "George Orwell",
			CoverImage:    "https://covers.openlibrary.org/b/id/12919331-L.jpg",
			Description:   "Winston Smith rebels against a totalitarian regime that watches everything and rewrites everyone.",
			Genre:         "Science Fiction",
			PublishedYear: 1949,
		},
		{
			ID:            "5",
			Title:         "The Name of the Wind",
			Author:        "Patrick Rothfuss",
			CoverImage:    "https://covers.openlibrary.org/b/id/8259447-L.jpg",
			Description:   "Kvothe recounts how a trouper's son became the most notorious wizard his world has ever seen.",
			Genre:         "Fantasy",
			PublishedYear: 2007,
		},
		{
			ID:            "6",
			Title:         "Murder on the Orient Express",
			Author:        "Agatha Christie",
			CoverImage:    "https://covers.openlibrary.org/b/id/12700969-L.jpg",
			Description:   "Hercule Poirot must solve a killing aboard a snowbound train where every passenger is a suspect.",
			Genre:         "Mystery",
			PublishedYear: 1934,
		},
		{
			ID:            "7",
			Title:         "Atomic Habits",
			Author:        "James Clear",
			CoverImage:    "https://covers.openlibrary.org/b/id/12539702-L.jpg",
			Description:   "A practical framework for building good habits and breaking bad ones, one small change at a time.",
			Genre:         "Self-Help",
			PublishedYear: 2018,
		},
		{
			ID:            "8",
			Title:         "Project Hail Mary",
			Author:        "Andy Weir",
			CoverImage:    "https://covers.openlibrary.org/b/id/11447221-L.jpg",
			Description:   "A lone astronaut wakes up on a desperate interstellar mission with no memory of how he got there.",
			Genre:         "Science Fiction",
			PublishedYear: 2021,
		},
	},
	readingLists: []models.ReadingList{
		{
			ID:          "101",
			UserID:      "1",
			Name:        "Sci-Fi Essentials",
			Description: "Classics and modern favorites to start with.",
			BookIDs:     []string{"1", "4", "8"},
			CreatedAt:   time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 5, 2, 18, 15, 0, 0, time.UTC),
		},
		{
			ID:          "102",
			UserID:      "1",
			Name:        "Cozy Evenings",
			Description: "Comfort reads for rainy nights.",
			BookIDs:     []string{"3", "6"},
			CreatedAt:   time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			ID:          "201",
			UserID:      "2",
			Name:        "Epic Fantasy",
			BookIDs:     []string{"2", "5"},
			CreatedAt:   time.Date(2024, 2, 20, 11, 45, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 6, 9, 8, 5, 0, 0, time.UTC),
		},
	},
}

// Default returns the canonical synthetic dataset.
func Default() *Dataset {
	return defaultDataset
}

// Books returns a copy of every fixture catalog entry in stable order.
func (d *Dataset) Books() []models.Book {
	out := make([]models.Book, len(d.books))
	copy(out, d.books)
	return out
}

// BookByID returns a copy of the fixture entry with the given id, if any.
func (d *Dataset) BookByID(id string) (*models.Book, bool) {
	for _, b := range d.books {
		if b.ID == id {
			return &b, true
		}
	}
	return nil, false
}

// ReadingLists returns copies of the fixture lists owned by the given user.
func (d *Dataset) ReadingLists(userID string) []models.ReadingList {
	out := make([]models.ReadingList, 0, len(d.readingLists))
	for _, l := range d.readingLists {
		if l.UserID == userID {
			out = append(out, copyList(l))
		}
	}
	return out
}

// AllReadingLists returns copies of every fixture list regardless of owner.
// Fallback lookups must stay user-scoped; this is for seeding the stub.
func (d *Dataset) AllReadingLists() []models.ReadingList {
	out := make([]models.ReadingList, 0, len(d.readingLists))
	for _, l := range d.readingLists {
		out = append(out, copyList(l))
	}
	return out
}

// ReadingListByID returns a copy of the fixture list with the given id,
// scoped to the given owner to avoid cross-user leakage.
func (d *Dataset) ReadingListByID(id, userID string) (*models.ReadingList, bool) {
	for _, l := range d.readingLists {
		if l.ID == id && l.UserID == userID {
			c := copyList(l)
			return &c, true
		}
	}
	return nil, false
}

// copyList clones a reading list including its book id slice.
func copyList(l models.ReadingList) models.ReadingList {
	l.BookIDs = append([]string(nil), l.BookIDs...)
	return l
}
