package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	res, err := NewTracerProvider(&config.Config{}, logger.Discard())
	require.NoError(t, err)
	assert.Nil(t, res.SDKProvider)
}

func TestNewMiddleware_DisabledPassesThrough(t *testing.T) {
	mw := NewMiddleware(&config.Config{})

	called := false
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestSkipPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/healthz", true},
		{"/metrics", true},
		{"/", false},
		{"/es/roi-calculator", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, SkipPath(tt.path))
		})
	}
}
