package models

// Book is a single entry in the authoritative catalog. Identity is assigned
// by the store; descriptive fields are mutable only by delegating to it.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	CoverImage    string `json:"coverImage,omitempty"`
	Description   string `json:"description,omitempty"`
	Genre         string `json:"genre,omitempty"`
	PublishedYear int    `json:"publishedYear,omitempty"`
}

// BookPatch is a partial book update. Nil fields are left unchanged and are
// omitted from the serialized payload.
type BookPatch struct {
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	CoverImage    *string `json:"coverImage,omitempty"`
	Description   *string `json:"description,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
}

// Apply merges the set fields of the patch over the given book.
func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.CoverImage != nil {
		b.CoverImage = *p.CoverImage
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.PublishedYear != nil {
		b.PublishedYear = *p.PublishedYear
	}
}
