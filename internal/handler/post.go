package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/inkwell/internal/domain"
	"github.com/msomdec/inkwell/internal/form"
	"github.com/msomdec/inkwell/internal/service"
	"github.com/msomdec/inkwell/internal/view"
)

// BlogHandler handles post listing, detail, commenting, and the
// admin-only post management routes.
type BlogHandler struct {
	blog     *service.BlogService
	renderer *view.Renderer
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blog *service.BlogService, renderer *view.Renderer) *BlogHandler {
	return &BlogHandler{blog: blog, renderer: renderer}
}

// commentView is a comment prepared for the template: author name, the
// avatar derived from the author's email, and the text.
type commentView struct {
	AuthorName string
	AvatarURL  string
	Text       string
}

func toCommentViews(comments []domain.Comment) []commentView {
	views := make([]commentView, len(comments))
	for i, c := range comments {
		views[i] = commentView{
			AuthorName: c.AuthorName,
			AvatarURL:  service.AvatarURL(c.AuthorEmail, 100),
			Text:       c.Text,
		}
	}
	return views
}

// HandleIndex renders the post list.
// GET /
func (h *BlogHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		slog.Error("list posts", "error", err)
		http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
		return
	}

	renderPage(h.renderer, w, r, http.StatusOK, "index", map[string]any{
		"Posts": posts,
	})
}

// HandleShowPost renders a post with its comments and the comment form.
// GET /post/{id}
func (h *BlogHandler) HandleShowPost(w http.ResponseWriter, r *http.Request) {
	h.showPost(w, r, http.StatusOK, form.CommentForm{}, form.Errors{})
}

// HandleAddComment processes a comment submission. Anonymous submissions
// are discarded and redirected to login.
// POST /post/{id}
func (h *BlogHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		setFlash(w, "You need to log in to comment.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	f := form.CommentForm{Text: r.FormValue("text")}
	if errs := form.Validate(f); len(errs) > 0 {
		h.showPost(w, r, http.StatusUnprocessableEntity, f, errs)
		return
	}

	if _, err := h.blog.AddComment(r.Context(), user, postID, f.Text); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("add comment", "error", err)
		http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/post/"+strconv.FormatInt(postID, 10), http.StatusSeeOther)
}

// HandleNewPostPage renders the empty post form.
// GET /new-post (admin)
func (h *BlogHandler) HandleNewPostPage(w http.ResponseWriter, r *http.Request) {
	renderPage(h.renderer, w, r, http.StatusOK, "make-post", map[string]any{
		"Form":   form.PostForm{},
		"Errors": form.Errors{},
		"Action": "/new-post",
	})
}

// HandleNewPost creates a post authored by the admin and redirects to
// the post list.
// POST /new-post (admin)
func (h *BlogHandler) HandleNewPost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	f := postFormFromRequest(r)
	if errs := form.Validate(f); len(errs) > 0 {
		renderPage(h.renderer, w, r, http.StatusUnprocessableEntity, "make-post", map[string]any{
			"Form":   f,
			"Errors": errs,
			"Action": "/new-post",
		})
		return
	}

	_, err := h.blog.CreatePost(r.Context(), user, f.Title, f.Subtitle, f.Body, f.ImgURL)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			renderPage(h.renderer, w, r, http.StatusConflict, "make-post", map[string]any{
				"Form":   f,
				"Errors": form.Errors{"Title": "A post with that title already exists."},
				"Action": "/new-post",
			})
			return
		}
		slog.Error("create post", "error", err)
		http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditPostPage renders the post form pre-populated from the record.
// GET /edit-post/{id} (admin)
func (h *BlogHandler) HandleEditPostPage(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, _, err := h.blog.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("get post", "error", err)
		http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
		return
	}

	renderPage(h.renderer, w, r, http.StatusOK, "make-post", map[string]any{
		"Form": form.PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgURL:   post.ImgURL,
			Body:     post.Body,
		},
		"Errors": form.Errors{},
		"Action": r.URL.Path,
		"IsEdit": true,
	})
}

// HandleEditPost updates the post and reassigns authorship to the
// editing admin, then redirects to the post detail.
// POST /edit-post/{id} (admin)
func (h *BlogHandler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	postID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	f := postFormFromRequest(r)
	if errs := form.Validate(f); len(errs) > 0 {
		renderPage(h.renderer, w, r, http.StatusUnprocessableEntity, "make-post", map[string]any{
			"Form":   f,
			"Errors": errs,
			"Action": r.URL.Path,
			"IsEdit": true,
		})
		return
	}

	_, err = h.blog.UpdatePost(r.Context(), postID, user, f.Title, f.Subtitle, f.Body, f.ImgURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, domain.ErrDuplicateTitle):
			renderPage(h.renderer, w, r, http.StatusConflict, "make-post", map[string]any{
				"Form":   f,
				"Errors": form.Errors{"Title": "A post with that title already exists."},
				"Action": r.URL.Path,
				"IsEdit": true,
			})
		default:
			slog.Error("update post", "error", err)
			http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/post/"+strconv.FormatInt(postID, 10), http.StatusSeeOther)
}

// HandleDeletePost removes the post and its comments, then redirects to
// the post list.
// GET /delete/{id} (admin)
func (h *BlogHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.blog.DeletePost(r.Context(), postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("delete post", "error", err)
		http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandler) showPost(w http.ResponseWriter, r *http.Request, status int, f form.CommentForm, errs form.Errors) {
	postID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, comments, err := h.blog.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("get post", "error", err)
		http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
		return
	}

	renderPage(h.renderer, w, r, status, "post", map[string]any{
		"Post":     post,
		"Comments": toCommentViews(comments),
		"Form":     f,
		"Errors":   errs,
	})
}

func postFormFromRequest(r *http.Request) form.PostForm {
	return form.PostForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgURL:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
