package models

import "time"

// ReadingList is a user-owned collection of catalog entries. Book ids are an
// unordered set; duplicate prevention is a caller concern.
type ReadingList struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BookIDs     []string  `json:"bookIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReadingListPatch is a partial reading list update. Nil fields are left
// unchanged and are omitted from the serialized payload.
type ReadingListPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	BookIDs     *[]string `json:"bookIds,omitempty"`
}

// Apply merges the set fields of the patch over the given list. Identity,
// ownership and timestamps are never touched by a patch.
func (p ReadingListPatch) Apply(l *ReadingList) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.BookIDs != nil {
		l.BookIDs = append([]string(nil), (*p.BookIDs)...)
	}
}
