package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
)

// templateFS embeds the page shell and the panel fragments.
//
//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the name of the full page template.
const PageTemplate = "page.html"

// PageData is used for the portfolio page.
type PageData struct {
	Title string
	About template.HTML
}

type panelData struct {
	ProfileURL string
	Cards      []Card
}

// HTMLRenderer renders panel states as HTML fragments for the projects container.
type HTMLRenderer struct {
	tmpl *template.Template
	opts Options
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer(opts Options) (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl, opts: opts}, nil
}

// Templates exposes the parsed template set, page included.
func (r *HTMLRenderer) Templates() *template.Template {
	return r.tmpl
}

// Render writes exactly one of the loading, card grid, empty or error fragments.
func (r *HTMLRenderer) Render(w io.Writer, state domain.PanelState) error {
	data := panelData{ProfileURL: state.ProfileURL()}

	name := "loading"
	switch state.Phase {
	case domain.PhaseLoaded:
		if len(state.Repositories) == 0 {
			name = "empty"
		} else {
			name = "projects"
			data.Cards = BuildCards(state.Repositories, r.opts)
		}
	case domain.PhaseError:
		name = "error"
	}

	return r.tmpl.ExecuteTemplate(w, name, data)
}
