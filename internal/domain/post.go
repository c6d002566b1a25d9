package domain

import "time"

// Post is the aggregate for authored content. AuthorID is fixed at creation
// and never reassigned. Deletion is a tombstone: the row survives, listing
// queries skip it.
type Post struct {
	ID        string
	AuthorID  string
	Title     string
	Content   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
