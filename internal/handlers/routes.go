package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/internal/site"
)

// RegisterRoutes mounts infrastructure, the JSON API and one page group
// per locale. The default locale is unprefixed; others live under /<locale>.
func RegisterRoutes(r *chi.Mux, h *Handler, limiter *leads.RateLimiter, static Static) {
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	r.Route("/api", func(r chi.Router) {
		r.NotFound(h.APINotFound)
		r.Post("/roi/estimate", h.EstimateAPI)
		r.With(limiter.Middleware(leads.FormROI, nil)).Post("/leads/roi", h.ROILeadAPI)
		r.With(limiter.Middleware(leads.FormDemo, nil)).Post("/leads/demo", h.DemoLeadAPI)
	})

	def := h.bundle.DefaultLocale()
	r.HandleFunc("/"+def, h.bundle.RedirectDefaultPrefix)
	r.HandleFunc("/"+def+"/*", h.bundle.RedirectDefaultPrefix)

	r.Group(func(r chi.Router) {
		r.Use(h.bundle.Middleware(def, h.nf, h.cfg.Site.LocaleDetection))
		h.pageRoutes(r, limiter)
	})

	for _, locale := range h.bundle.Locales() {
		if locale == def {
			continue
		}
		r.Route("/"+locale, func(r chi.Router) {
			r.Use(h.bundle.Middleware(locale, h.nf, false))
			h.pageRoutes(r, limiter)
		})
	}

	r.NotFound(h.NotFound)
}

func (h *Handler) pageRoutes(r chi.Router, limiter *leads.RateLimiter) {
	r.Get("/", h.Home)
	r.Get("/features/{slug}", h.Feature)
	for _, l := range site.LegalPages {
		r.Get(l.Path(), h.Legal(l.Slug))
	}

	r.Get("/roi-calculator", h.ROIForm)
	r.Post("/roi-calculator", h.ROISubmit)
	r.Get("/roi-calculator/results", h.ROIResults)
	r.With(limiter.Middleware(leads.FormROI, http.HandlerFunc(h.roiThrottled))).
		Post("/roi-calculator/report", h.ROIReport)

	r.Get("/demo", h.DemoForm)
	r.With(limiter.Middleware(leads.FormDemo, http.HandlerFunc(h.demoThrottled))).
		Post("/demo", h.DemoSubmit)
}
