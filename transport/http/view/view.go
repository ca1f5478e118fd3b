package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"museum/config"
	"museum/shared/constant"
)

const (
	baseTemplate = "base.html"

	bootstrapStylesheet = "https://stackpath.bootstrapcdn.com/bootstrap/4.1.3/css/bootstrap.min.css"
	localStylesheet     = "/css/styles.css"
)

//go:embed templates/*.html
var templates embed.FS

// Renderer writes a named page with its view-model.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Head is the document head shared by every page.
type Head struct {
	Title       string
	Stylesheets []string
}

type page struct {
	Head Head
	Data any
}

type renderer struct {
	head  Head
	pages map[string]*template.Template
}

// New parses every page together with the base layout. Each page gets its own template
// set so the "content" blocks do not collide.
func New(cfg *config.Config) Renderer {
	r := &renderer{
		head: Head{
			Title:       cfg.App.Title,
			Stylesheets: []string{localStylesheet, bootstrapStylesheet},
		},
		pages: make(map[string]*template.Template),
	}

	for _, name := range []string{constant.ViewIndex, constant.ViewGallery, constant.ViewObject} {
		r.pages[name] = template.Must(template.ParseFS(templates, "templates/"+baseTemplate, "templates/"+name+".html"))
	}

	return r
}

func (r *renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}

	if err := tmpl.ExecuteTemplate(w, baseTemplate, page{Head: r.head, Data: data}); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return nil
}
