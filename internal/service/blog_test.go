package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/inkwell/internal/domain"
	"github.com/msomdec/inkwell/internal/repository/sqlite"
	"github.com/msomdec/inkwell/internal/service"
)

func newTestBlogService(t *testing.T) (*service.BlogService, *service.AuthService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	auth := service.NewAuthService(db.Users(), testSecretKey, 4)
	blog := service.NewBlogService(db.Posts(), db.Comments())
	return blog, auth, db
}

func registerUser(t *testing.T, auth *service.AuthService, email, name string) *domain.User {
	t.Helper()
	user, err := auth.Register(context.Background(), email, name, "secret1")
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	return user
}

func TestBlogService_CreateAndList(t *testing.T) {
	blog, auth, _ := newTestBlogService(t)
	ctx := context.Background()

	author := registerUser(t, auth, "author@example.com", "Author")

	post, err := blog.CreatePost(ctx, author, "Hello", "A greeting", "<p>Hi there.</p>", "https://example.com/hello.jpg")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID == 0 {
		t.Fatal("expected post ID to be set")
	}
	if post.Date == "" {
		t.Fatal("expected a publication date")
	}

	posts, err := blog.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Title != "Hello" {
		t.Fatalf("expected title Hello, got %q", posts[0].Title)
	}
	if posts[0].AuthorName != "Author" {
		t.Fatalf("expected author name populated, got %q", posts[0].AuthorName)
	}
}

func TestBlogService_CreatePost_DuplicateTitle(t *testing.T) {
	blog, auth, _ := newTestBlogService(t)
	ctx := context.Background()

	author := registerUser(t, auth, "author@example.com", "Author")

	if _, err := blog.CreatePost(ctx, author, "Hello", "one", "body", "https://example.com/a.jpg"); err != nil {
		t.Fatalf("first CreatePost: %v", err)
	}

	_, err := blog.CreatePost(ctx, author, "Hello", "two", "body", "https://example.com/b.jpg")
	if !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}

	posts, err := blog.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post after conflict, got %d", len(posts))
	}
}

func TestBlogService_ListNewestFirst(t *testing.T) {
	blog, auth, _ := newTestBlogService(t)
	ctx := context.Background()

	author := registerUser(t, auth, "author@example.com", "Author")

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := blog.CreatePost(ctx, author, title, "sub", "body", "https://example.com/c.jpg"); err != nil {
			t.Fatalf("CreatePost %s: %v", title, err)
		}
	}

	posts, err := blog.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Title != "Third" || posts[2].Title != "First" {
		t.Fatalf("expected newest first, got %q .. %q", posts[0].Title, posts[2].Title)
	}
}

func TestBlogService_UpdatePost_ReassignsAuthor(t *testing.T) {
	blog, auth, _ := newTestBlogService(t)
	ctx := context.Background()

	original := registerUser(t, auth, "original@example.com", "Original")
	editor := registerUser(t, auth, "editor@example.com", "Editor")

	post, err := blog.CreatePost(ctx, original, "Hello", "sub", "body", "https://example.com/d.jpg")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	createdDate := post.Date

	updated, err := blog.UpdatePost(ctx, post.ID, editor, "Hello again", "new sub", "new body", "https://example.com/e.jpg")
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}

	if updated.AuthorID != editor.ID {
		t.Fatalf("expected authorship reassigned to editor %d, got %d", editor.ID, updated.AuthorID)
	}
	if updated.Date != createdDate {
		t.Fatalf("expected publication date preserved, got %q", updated.Date)
	}

	got, _, err := blog.GetPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.Title != "Hello again" || got.AuthorName != "Editor" {
		t.Fatalf("unexpected post after update: %+v", got)
	}
}

func TestBlogService_UpdatePost_NotFound(t *testing.T) {
	blog, auth, _ := newTestBlogService(t)
	ctx := context.Background()

	editor := registerUser(t, auth, "editor@example.com", "Editor")

	_, err := blog.UpdatePost(ctx, 99999, editor, "T", "S", "B", "https://example.com/f.jpg")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogService_DeletePost_RemovesComments(t *testing.T) {
	blog, auth, db := newTestBlogService(t)
	ctx := context.Background()

	author := registerUser(t, auth, "author@example.com", "Author")
	reader := registerUser(t, auth, "reader@example.com", "Reader")

	post, err := blog.CreatePost(ctx, author, "Hello", "sub", "body", "https://example.com/g.jpg")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if _, err := blog.AddComment(ctx, reader, post.ID, "great read"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if err := blog.DeletePost(ctx, post.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	if _, _, err := blog.GetPost(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	var count int
	if err := db.SqlDB.QueryRow("SELECT COUNT(*) FROM comments WHERE post_id = ?", post.ID).Scan(&count); err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected comments removed with post, got %d", count)
	}
}

func TestBlogService_DeletePost_NotFound(t *testing.T) {
	blog, _, _ := newTestBlogService(t)

	if err := blog.DeletePost(context.Background(), 99999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogService_AddComment(t *testing.T) {
	blog, auth, _ := newTestBlogService(t)
	ctx := context.Background()

	author := registerUser(t, auth, "author@example.com", "Author")
	reader := registerUser(t, auth, "reader@example.com", "Reader")

	post, err := blog.CreatePost(ctx, author, "Hello", "sub", "body", "https://example.com/h.jpg")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	comment, err := blog.AddComment(ctx, reader, post.ID, "first!")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.ID == 0 {
		t.Fatal("expected comment ID to be set")
	}

	_, comments, err := blog.GetPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].AuthorName != "Reader" || comments[0].AuthorEmail != "reader@example.com" {
		t.Fatalf("expected comment author populated, got %+v", comments[0])
	}
}

func TestBlogService_AddComment_MissingPost(t *testing.T) {
	blog, auth, _ := newTestBlogService(t)
	ctx := context.Background()

	reader := registerUser(t, auth, "reader@example.com", "Reader")

	_, err := blog.AddComment(ctx, reader, 99999, "into the void")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
