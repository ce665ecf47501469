package domain

import (
	"context"
	"time"
)

// Post is a published blog entry. Body may carry HTML produced by the
// rich-text editor; escaping is the template layer's concern.
type Post struct {
	ID       int64
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
	Date     string // human-readable publication date, e.g. "August 28, 2026"
	AuthorID int64
	// AuthorName is populated on reads that join the users table.
	AuthorName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	// List returns all posts, newest first, with AuthorName populated.
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	// Delete removes the post and its comments in one transaction.
	Delete(ctx context.Context, id int64) error
}
