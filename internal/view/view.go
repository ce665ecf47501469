// Package view renders the application's HTML pages from embedded
// templates. Each page template is parsed against the shared layout and
// executed with a name→value data map built by the handlers.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed layout+page template set.
type Renderer struct {
	tmpl map[string]*template.Template
}

// New parses the embedded templates. Every page is parsed together with
// the layout so pages only define their content blocks.
func New() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	funcs := template.FuncMap{
		// Post bodies and comments come from a rich-text editor and are
		// stored as HTML; the templates opt in explicitly.
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}

	tmpl := make(map[string]*template.Template)
	for _, page := range pages {
		name := strings.TrimSuffix(strings.TrimPrefix(page, "templates/"), ".html")
		if name == "layout" {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		tmpl[name] = t
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named page template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	t, ok := r.tmpl[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
