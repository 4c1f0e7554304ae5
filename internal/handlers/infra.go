package handlers

import (
	"net/http"
	"time"

	"github.com/malamapl09/plexo-marketing/internal/version"
	"github.com/malamapl09/plexo-marketing/pkg/apperror"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
}

// Health reports liveness with build information.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	apperror.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Version:   version.Version,
		Commit:    version.GitCommit,
	})
}

// Healthz is the minimal liveness check for orchestrators.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	apperror.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := h.seo.Sitemap(h.now())
	if err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewInternal("build sitemap", err))
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.seo.Robots()))
}
