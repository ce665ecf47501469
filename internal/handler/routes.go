package handler

import (
	"net/http"

	"github.com/msomdec/inkwell/internal/service"
	"github.com/msomdec/inkwell/internal/view"
)

// New builds the application's HTTP handler: all routes registered on a
// mux, wrapped with principal resolution and security headers.
func New(auth *service.AuthService, blog *service.BlogService, renderer *view.Renderer, cookieSecure bool) http.Handler {
	authHandler := NewAuthHandler(auth, renderer, cookieSecure)
	blogHandler := NewBlogHandler(blog, renderer)
	pageHandler := NewPageHandler(renderer)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /{$}", blogHandler.HandleIndex)
	mux.HandleFunc("GET /about", pageHandler.HandleAbout)
	mux.HandleFunc("GET /contact", pageHandler.HandleContact)

	mux.HandleFunc("GET /register", authHandler.HandleRegisterPage)
	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("GET /login", authHandler.HandleLoginPage)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("GET /logout", authHandler.HandleLogout)

	mux.HandleFunc("GET /post/{id}", blogHandler.HandleShowPost)
	mux.HandleFunc("POST /post/{id}", blogHandler.HandleAddComment)

	// Post management is admin-only; the guard answers 404 for everyone
	// else.
	mux.Handle("GET /new-post", RequireAdmin(http.HandlerFunc(blogHandler.HandleNewPostPage)))
	mux.Handle("POST /new-post", RequireAdmin(http.HandlerFunc(blogHandler.HandleNewPost)))
	mux.Handle("GET /edit-post/{id}", RequireAdmin(http.HandlerFunc(blogHandler.HandleEditPostPage)))
	mux.Handle("POST /edit-post/{id}", RequireAdmin(http.HandlerFunc(blogHandler.HandleEditPost)))
	mux.Handle("GET /delete/{id}", RequireAdmin(http.HandlerFunc(blogHandler.HandleDeletePost)))

	return SecurityHeaders(WithUser(auth, mux))
}
