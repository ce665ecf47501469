package domain

import (
	"context"
	"time"
)

// Comment is a reader's remark on a post. Comments are immutable once
// created and are removed only when their post is deleted.
type Comment struct {
	ID       int64
	Text     string
	AuthorID int64
	PostID   int64
	// AuthorName and AuthorEmail are populated on reads that join the
	// users table; the email feeds the avatar URL.
	AuthorName  string
	AuthorEmail string
	CreatedAt   time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByPost returns the post's comments, oldest first, with author
	// name and email populated.
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}
