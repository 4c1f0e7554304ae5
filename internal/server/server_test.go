package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/internal/tracing"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/demo?x=1", nil))
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "uri=\"/demo?x=1\"")

	buf.Reset()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String())
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(RouterParams{
		Config:  &config.Config{},
		Log:     logger.Discard(),
		Tracing: tracing.NewMiddleware(&config.Config{}),
	})
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping/", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "trailing slash stripped")
	assert.Equal(t, "pong", rec.Body.String())
}

func TestNewRouter_ProxyHeaders(t *testing.T) {
	tests := []struct {
		name  string
		trust bool
		want  string
	}{
		{"ignored by default", false, "192.0.2.10:1234"},
		{"trusted when enabled", true, "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{TrustProxyHeaders: tt.trust}
			r := NewRouter(RouterParams{Config: cfg, Log: logger.Discard(), Tracing: tracing.NewMiddleware(cfg)})
			r.Get("/ip", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(r.RemoteAddr))
			})

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.RemoteAddr = "192.0.2.10:1234"
			req.Header.Set("X-Real-IP", "203.0.113.7")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}
