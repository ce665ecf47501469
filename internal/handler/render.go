package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/inkwell/internal/view"
)

// renderPage executes the named template with the given data, injecting
// the request's principal and any pending flash notice. Template failures
// are logged and answered with a generic 500.
func renderPage(renderer *view.Renderer, w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["User"] = UserFromContext(r.Context())
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(w, r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := renderer.Render(w, name, data); err != nil {
		slog.Error("render template", "template", name, "error", err)
	}
}
