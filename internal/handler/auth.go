package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/inkwell/internal/domain"
	"github.com/msomdec/inkwell/internal/form"
	"github.com/msomdec/inkwell/internal/service"
	"github.com/msomdec/inkwell/internal/view"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	renderer     *view.Renderer
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, renderer *view.Renderer, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, renderer: renderer, cookieSecure: cookieSecure}
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	renderPage(h.renderer, w, r, http.StatusOK, "register", map[string]any{
		"Form":   form.RegisterForm{},
		"Errors": form.Errors{},
	})
}

// HandleRegister processes a registration submission. A valid submission
// creates the account, starts a session, and redirects to the post list.
// An already-registered email redirects to login with a notice.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	f := form.RegisterForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
	}

	if errs := form.Validate(f); len(errs) > 0 {
		renderPage(h.renderer, w, r, http.StatusUnprocessableEntity, "register", map[string]any{
			"Form":   f,
			"Errors": errs,
		})
		return
	}

	user, err := h.auth.Register(r.Context(), f.Email, f.Name, f.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			setFlash(w, "You have already registered with that email, log in instead.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		slog.Error("register user", "error", err)
		http.Error(w, "An unexpected error occurred. Please try again.", http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, user)
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(h.renderer, w, r, http.StatusOK, "login", map[string]any{
		"Form":   form.LoginForm{},
		"Errors": form.Errors{},
	})
}

// HandleLogin processes a login submission. Unknown email and wrong
// password produce the same notice.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	f := form.LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if errs := form.Validate(f); len(errs) > 0 {
		renderPage(h.renderer, w, r, http.StatusUnprocessableEntity, "login", map[string]any{
			"Form":   f,
			"Errors": errs,
		})
		return
	}

	user, err := h.auth.Login(r.Context(), f.Email, f.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			setFlash(w, "The email or password is incorrect.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		slog.Error("login user", "error", err)
		http.Error(w, "An unexpected error occurred. Please try again.", http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, user)
}

// HandleLogout clears the session cookie. Idempotent.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w, h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *domain.User) {
	token, err := h.auth.IssueToken(user)
	if err != nil {
		slog.Error("issue session token", "error", err)
		http.Error(w, "An unexpected error occurred. Please try again.", http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, token, h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
