package leads

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

//go:embed templates
var templateFS embed.FS

// TemplateContext is the data passed to notification templates.
type TemplateContext map[string]any

// TemplateRenderer renders Handlebars notification bodies from an fs.FS.
//
// Layout:
//   - layouts/*.hbs wrap rendered content, exposed to them as {{content}}
//   - *.hbs are the notification bodies
type TemplateRenderer struct {
	log       *slog.Logger
	templates map[string]*raymond.Template
	layouts   map[string]*raymond.Template
}

// NewTemplateRenderer parses every template under root. Parse errors are
// fatal because the templates ship inside the binary.
func NewTemplateRenderer(fsys fs.FS, root string, log *slog.Logger) (*TemplateRenderer, error) {
	r := &TemplateRenderer{
		log:       log.With(logger.Scope("leads.template")),
		templates: make(map[string]*raymond.Template),
		layouts:   make(map[string]*raymond.Template),
	}
	if err := r.load(fsys, path.Join(root, "layouts"), r.layouts); err != nil {
		return nil, err
	}
	if err := r.load(fsys, root, r.templates); err != nil {
		return nil, err
	}

	r.log.Debug("loaded notification templates",
		slog.Int("templates", len(r.templates)),
		slog.Int("layouts", len(r.layouts)))
	return r, nil
}

func (r *TemplateRenderer) load(fsys fs.FS, dir string, into map[string]*raymond.Template) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read template dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hbs") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read template %s: %w", entry.Name(), err)
		}
		tmpl, err := raymond.Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", entry.Name(), err)
		}
		into[strings.TrimSuffix(entry.Name(), ".hbs")] = tmpl
	}
	return nil
}

// Render executes the named template and wraps it in layoutName, if given.
func (r *TemplateRenderer) Render(name, layoutName string, data TemplateContext) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("notification template %q not found", name)
	}
	rendered, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	if layoutName == "" {
		return rendered, nil
	}

	layout, ok := r.layouts[layoutName]
	if !ok {
		return "", fmt.Errorf("notification layout %q not found", layoutName)
	}
	layoutCtx := make(TemplateContext, len(data)+1)
	for k, v := range data {
		layoutCtx[k] = v
	}
	layoutCtx["content"] = raymond.SafeString(rendered)

	out, err := layout.Exec(layoutCtx)
	if err != nil {
		return "", fmt.Errorf("render layout %s: %w", layoutName, err)
	}
	return out, nil
}

// Has reports whether a body template exists.
func (r *TemplateRenderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}
