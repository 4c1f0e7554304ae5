package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	g "maragu.dev/gomponents"

	"github.com/malamapl09/plexo-marketing/internal/components"
	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/internal/seo"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

// Static is the public asset tree served under /static/.
type Static struct {
	FS fs.FS
}

// Handler serves every page and API of the site.
type Handler struct {
	cfg    *config.Config
	log    *slog.Logger
	bundle *i18n.Bundle
	nf     i18n.NumberFormatter
	seo    *seo.Builder
	leads  *leads.Service
	now    func() time.Time
}

func NewHandler(cfg *config.Config, log *slog.Logger, bundle *i18n.Bundle, nf i18n.NumberFormatter, sb *seo.Builder, svc *leads.Service) *Handler {
	return &Handler{
		cfg:    cfg,
		log:    log.With(logger.Scope("handlers")),
		bundle: bundle,
		nf:     nf,
		seo:    sb,
		leads:  svc,
		now:    time.Now,
	}
}

// printer returns the request's printer. Requests outside a locale group
// get one derived from the path prefix.
func (h *Handler) printer(r *http.Request) *i18n.Printer {
	if p := i18n.FromContext(r.Context()); p != nil {
		return p
	}
	locale, rest := h.bundle.LocaleFromPath(r.URL.Path)
	return i18n.NewPrinter(h.bundle, h.nf, locale, rest)
}

// page renders a full HTML document with header and footer.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, cfg components.PageConfig, content ...g.Node) {
	p := h.printer(r)

	if cfg.SiteName == "" {
		cfg.SiteName = h.seo.SiteName()
	}
	if len(cfg.Alternates.Languages) == 0 && !cfg.NoIndex {
		cfg.Alternates = h.seo.Alternates(p.CurrentPath(), p.Locale)
	}
	if cfg.OGImage == "" {
		cfg.OGImage = h.seo.BaseURL() + "/static/images/og-image.svg"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if err := components.Page(p, cfg, h.now().Year(), content...).Render(w); err != nil {
		h.log.Error("render page",
			slog.String("path", r.URL.Path),
			logger.Error(err))
	}
}
