package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/inkwell/internal/domain"
)

// BlogService handles post and comment operations.
type BlogService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
	now      func() time.Time
}

// NewBlogService creates a new BlogService.
func NewBlogService(posts domain.PostRepository, comments domain.CommentRepository) *BlogService {
	return &BlogService{
		posts:    posts,
		comments: comments,
		now:      time.Now,
	}
}

// ListPosts returns all posts, newest first.
func (s *BlogService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// GetPost returns a single post with its comments.
func (s *BlogService) GetPost(ctx context.Context, id int64) (*domain.Post, []domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list comments: %w", err)
	}

	return post, comments, nil
}

// CreatePost publishes a new post authored by the given user, stamped
// with a human-readable date.
func (s *BlogService) CreatePost(ctx context.Context, author *domain.User, title, subtitle, body, imgURL string) (*domain.Post, error) {
	post := &domain.Post{
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		ImgURL:   imgURL,
		Date:     s.now().Format("January 2, 2006"),
		AuthorID: author.ID,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost rewrites the post's content and reassigns authorship to the
// editing user. The original publication date is kept.
func (s *BlogService) UpdatePost(ctx context.Context, id int64, editor *domain.User, title, subtitle, body, imgURL string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Subtitle = subtitle
	post.Body = body
	post.ImgURL = imgURL
	post.AuthorID = editor.ID

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and its comments.
func (s *BlogService) DeletePost(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

// AddComment records a comment by the given user on the given post.
func (s *BlogService) AddComment(ctx context.Context, author *domain.User, postID int64, text string) (*domain.Comment, error) {
	// The post must exist; commenting on a deleted post is a 404, not an
	// orphan row.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Text:     text,
		AuthorID: author.ID,
		PostID:   postID,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}
