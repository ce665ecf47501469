package handler

import (
	"net/http"

	"github.com/msomdec/inkwell/internal/view"
)

// PageHandler serves the static about and contact pages.
type PageHandler struct {
	renderer *view.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(renderer *view.Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

// HandleAbout renders the about page.
// GET /about
func (h *PageHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	renderPage(h.renderer, w, r, http.StatusOK, "about", nil)
}

// HandleContact renders the contact page.
// GET /contact
func (h *PageHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	renderPage(h.renderer, w, r, http.StatusOK, "contact", nil)
}
