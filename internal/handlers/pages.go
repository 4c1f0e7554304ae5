package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/malamapl09/plexo-marketing/internal/components"
	"github.com/malamapl09/plexo-marketing/internal/site"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)

	ld, err := h.seo.SoftwareApplication(p.T("Metadata.jsonLdDescription"), p.T("Metadata.jsonLdOffersDescription"))
	if err != nil {
		h.log.Warn("encode structured data", logger.Error(err))
	}

	h.page(w, r, http.StatusOK, components.PageConfig{
		Title:       p.T("Metadata.homeTitle"),
		Description: p.T("Metadata.homeDescription"),
		JSONLD:      ld,
		Scripts:     []string{"/static/js/pricing.js"},
	}, components.Home(p))
}

func (h *Handler) Feature(w http.ResponseWriter, r *http.Request) {
	f, ok := site.FeatureBySlug(chi.URLParam(r, "slug"))
	if !ok {
		h.NotFound(w, r)
		return
	}
	p := h.printer(r)

	h.page(w, r, http.StatusOK, components.PageConfig{
		Title:       p.T(f.Msg("metaTitle")),
		Description: p.T(f.Msg("metaDescription")),
	}, components.FeaturePage(p, f))
}

// Legal serves a policy page; the slug is the route's last path segment.
func (h *Handler) Legal(slug string) http.HandlerFunc {
	l, ok := site.LegalBySlug(slug)
	if !ok {
		panic("handlers: unknown legal page " + slug)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		h.page(w, r, http.StatusOK, components.PageConfig{
			Title:       p.T(l.Msg("metaTitle")),
			Description: p.T(l.Msg("metaDescription")),
		}, components.LegalPage(p, l, h.cfg.Site.SupportEmail))
	}
}

// NotFound renders the 404 page in the locale of the requested path.
// BadRequest answers a form post whose body could not be parsed.
func (h *Handler) BadRequest(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	h.page(w, r, http.StatusBadRequest, components.PageConfig{
		Title:   p.T("BadRequest.metaTitle"),
		NoIndex: true,
	}, components.BadRequest(p))
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	h.log.Debug("page not found", slog.String("path", r.URL.Path))

	h.page(w, r, http.StatusNotFound, components.PageConfig{
		Title:   p.T("NotFound.metaTitle"),
		NoIndex: true,
	}, components.NotFound(p))
}
