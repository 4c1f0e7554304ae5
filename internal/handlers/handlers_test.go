package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/internal/handlers"
	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/internal/seo"
	"github.com/malamapl09/plexo-marketing/internal/server"
	"github.com/malamapl09/plexo-marketing/internal/tracing"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

// collector stands in for the third-party form endpoint.
type collector struct {
	srv   *httptest.Server
	calls atomic.Int32

	mu     sync.Mutex
	status int
	body   string
	last   string
}

func newCollector(t *testing.T) *collector {
	c := &collector{status: http.StatusOK, body: `{"ok":true}`}
	c.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.calls.Add(1)
		raw, _ := io.ReadAll(r.Body)

		c.mu.Lock()
		c.last = string(raw)
		status, body := c.status, c.body
		c.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(c.srv.Close)
	return c
}

func (c *collector) respond(status int, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status, c.body = status, body
}

func (c *collector) lastPayload(t *testing.T) map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(c.last), &payload))
	return payload
}

type testEnv struct {
	router    http.Handler
	collector *collector
}

func newEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()
	c := newCollector(t)

	cfg := &config.Config{
		Site: config.SiteConfig{
			BaseURL:         "https://plexoapp.com",
			SiteName:        "Plexo",
			DefaultLocale:   "en",
			Locales:         []string{"en", "es"},
			LocaleDetection: true,
			SupportEmail:    "sales@plexoapp.com",
		},
		Leads: config.LeadsConfig{
			ROIEndpoint:       c.srv.URL + "/roi",
			DemoEndpoint:      c.srv.URL + "/demo",
			Timeout:           2 * time.Second,
			RequestsPerMinute: 600,
			Burst:             100,
		},
	}
	for _, o := range opts {
		o(cfg)
	}

	log := logger.Discard()
	bundle, err := i18n.NewBundle(cfg, log)
	require.NoError(t, err)

	dispatcher := leads.NewDispatcher(leads.NoopNotifier{}, log)
	dispatcher.Start()
	t.Cleanup(func() { _ = dispatcher.Stop(context.Background()) })

	svc := leads.NewService(leads.NewClient(cfg, log), dispatcher, log)
	h := handlers.NewHandler(cfg, log, bundle, i18n.NewFormatter(bundle), seo.NewBuilder(cfg), svc)

	r := server.NewRouter(server.RouterParams{Config: cfg, Log: log, Tracing: tracing.NewMiddleware(cfg)})
	static := handlers.Static{FS: fstest.MapFS{
		"styles.css": &fstest.MapFile{Data: []byte("body{}")},
	}}
	handlers.RegisterRoutes(r, h, leads.NewRateLimiterFromConfig(cfg), static)

	return &testEnv{router: r, collector: c}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPages(t *testing.T) {
	env := newEnv(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, `<html lang="en"`},
		{"/es", http.StatusOK, `<html lang="es"`},
		{"/es/", http.StatusOK, `<html lang="es"`},
		{"/features/tasks", http.StatusOK, "Tasks &amp; Assignments"},
		{"/es/features/audits", http.StatusOK, `<html lang="es"`},
		{"/privacy", http.StatusOK, "Privacy Policy"},
		{"/es/terms", http.StatusOK, `<link rel="canonical" href="https://plexoapp.com/es/terms">`},
		{"/demo", http.StatusOK, `id="demo-form"`},
		{"/roi-calculator", http.StatusOK, `id="roi-form"`},
		{"/features/unknown", http.StatusNotFound, `<meta name="robots" content="noindex">`},
		{"/nope", http.StatusNotFound, "404"},
		{"/es/nope", http.StatusNotFound, `<html lang="es"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHomeStructuredData(t *testing.T) {
	env := newEnv(t)
	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<script type="application/ld+json">`)
	assert.Contains(t, rec.Body.String(), `"@type":"SoftwareApplication"`)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestLocaleRouting(t *testing.T) {
	env := newEnv(t)

	t.Run("english prefix redirects", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/en/demo?ref=ad", nil))
		assert.Equal(t, http.StatusPermanentRedirect, rec.Code)
		assert.Equal(t, "/demo?ref=ad", rec.Header().Get("Location"))
	})

	t.Run("english prefix redirect stays on host", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/en//evil.example", nil))
		assert.Equal(t, http.StatusPermanentRedirect, rec.Code)
		assert.Equal(t, "/evil.example", rec.Header().Get("Location"))
	})

	t.Run("spanish browser is redirected once", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/roi-calculator", nil)
		req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
		rec := env.do(req)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/es/roi-calculator", rec.Header().Get("Location"))
	})

	t.Run("locale cookie pins english", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es")
		req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})
		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("spanish page sets cookie", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/es/demo", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "locale=es")
	})
}

func TestROICalculator(t *testing.T) {
	env := newEnv(t)

	t.Run("form clamps query inputs", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/roi-calculator?stores=9999&hourlyCost=5", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="roi-stores" name="stores" type="number"`)
		assert.Contains(t, body, `value="500"`)
		assert.Contains(t, body, `value="10"`)
	})

	t.Run("submit shows results", func(t *testing.T) {
		rec := env.do(postForm("/roi-calculator", url.Values{
			"stores": {"25"}, "teamMembersPerStore": {"15"}, "hoursPerStore": {"10"}, "hourlyCost": {"25"},
		}))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="roi-results"`)
		assert.Contains(t, body, "$194,850")
		assert.Contains(t, body, "$16,238")
	})

	t.Run("spanish results group digits with dots", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/es/roi-calculator/results?stores=25&hoursPerStore=10&hourlyCost=25", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "$194.850")
	})

	t.Run("extreme hourly cost exponent uses default", func(t *testing.T) {
		start := time.Now()
		rec := env.do(httptest.NewRequest(http.MethodGet, "/roi-calculator/results?stores=25&hoursPerStore=10&hourlyCost=1e-4000000", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Less(t, time.Since(start), time.Second)
		assert.Contains(t, rec.Body.String(), "$194,850")
	})

	t.Run("malformed form body is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/roi-calculator", strings.NewReader("stores=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := env.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "We couldn&#39;t read that request")
	})
}

func TestROIReport(t *testing.T) {
	form := url.Values{"stores": {"25"}, "teamMembersPerStore": {"15"}, "hoursPerStore": {"10"}, "hourlyCost": {"25"}}

	t.Run("delivered", func(t *testing.T) {
		env := newEnv(t)
		f := cloneValues(form)
		f.Set("email", "ops@acme.com")

		rec := env.do(postForm("/roi-calculator/report", f))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="roi-lead-success"`)
		assert.EqualValues(t, 1, env.collector.calls.Load())

		payload := env.collector.lastPayload(t)
		assert.Equal(t, "ops@acme.com", payload["email"])
		assert.EqualValues(t, 194850, payload["annualSavings"])
	})

	t.Run("invalid email never reaches collector", func(t *testing.T) {
		env := newEnv(t)
		f := cloneValues(form)
		f.Set("email", "not-an-email")

		rec := env.do(postForm("/roi-calculator/report", f))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter a valid email address.")
		assert.Contains(t, rec.Body.String(), `value="not-an-email"`)
		assert.EqualValues(t, 0, env.collector.calls.Load())
	})

	t.Run("collector failure keeps form", func(t *testing.T) {
		env := newEnv(t)
		env.collector.respond(http.StatusInternalServerError, "")
		f := cloneValues(form)
		f.Set("email", "ops@acme.com")

		rec := env.do(postForm("/es/roi-calculator/report", f))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="roi-lead-form"`)
		assert.Contains(t, body, "sales@plexoapp.com")
		assert.Contains(t, body, "$194.850")
	})

	t.Run("rate limited", func(t *testing.T) {
		env := newEnv(t, func(c *config.Config) {
			c.Leads.RequestsPerMinute = 1
			c.Leads.Burst = 1
		})
		f := cloneValues(form)
		f.Set("email", "ops@acme.com")

		first := env.do(postForm("/roi-calculator/report", f))
		require.Equal(t, http.StatusOK, first.Code)

		second := env.do(postForm("/roi-calculator/report", f))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Contains(t, second.Body.String(), "Too many requests")
		assert.EqualValues(t, 1, env.collector.calls.Load())
	})
}

func TestDemoSubmit(t *testing.T) {
	valid := url.Values{
		"fullName":   {"Jane Smith"},
		"email":      {"jane@acme.com"},
		"company":    {"Acme Retail"},
		"storeCount": {"11-50"},
	}

	t.Run("success", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postForm("/demo", valid))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="demo-success"`)
		assert.Contains(t, rec.Body.String(), "Jane Smith")

		payload := env.collector.lastPayload(t)
		assert.Equal(t, "No additional message", payload["message"])
	})

	t.Run("field errors", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postForm("/demo", url.Values{"email": {"jane"}}))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Full name is required.")
		assert.Contains(t, body, "Please enter a valid email address.")
		assert.Contains(t, body, "Company name is required.")
		assert.EqualValues(t, 0, env.collector.calls.Load())
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newEnv(t)
		req := httptest.NewRequest(http.MethodPost, "/es/demo", strings.NewReader("email=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := env.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No pudimos leer esa solicitud")
		assert.EqualValues(t, 0, env.collector.calls.Load())
	})

	t.Run("collector message shown", func(t *testing.T) {
		env := newEnv(t)
		env.collector.respond(http.StatusUnprocessableEntity, `{"error":"Form is disabled"}`)

		rec := env.do(postForm("/demo", valid))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Form is disabled")
		assert.Contains(t, rec.Body.String(), `value="Jane Smith"`)
	})

	t.Run("collector generic error", func(t *testing.T) {
		env := newEnv(t)
		env.collector.respond(http.StatusInternalServerError, "")

		rec := env.do(postForm("/demo", valid))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Something went wrong. Please try again or email us at sales@plexoapp.com.")
	})

	t.Run("unreachable collector", func(t *testing.T) {
		env := newEnv(t)
		env.collector.srv.Close()

		rec := env.do(postForm("/demo", valid))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unable to send your request.")
	})
}

func TestAPI(t *testing.T) {
	t.Run("estimate", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postJSON("/api/roi/estimate", `{"stores":25,"hoursPerStore":10,"hourlyCost":25}`))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.EstimateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 25, resp.Inputs.Stores)
		assert.Equal(t, 15, resp.Inputs.TeamMembersPerStore)
		assert.EqualValues(t, 150, resp.Results.WeeklyHoursSaved)
		assert.EqualValues(t, 16238, resp.Results.MonthlySavings)
		assert.EqualValues(t, 194850, resp.Results.AnnualSavings)
		assert.Equal(t, "16237.5", resp.Results.Exact.MonthlySavings.String())
	})

	t.Run("estimate clamps", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postJSON("/api/roi/estimate", `{"stores":0,"hourlyCost":1000}`))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.EstimateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Inputs.Stores)
		assert.Equal(t, "100", resp.Inputs.HourlyCost.String())
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postJSON("/api/roi/estimate", `{"stores":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"bad_request"`)
	})

	t.Run("roi lead accepted", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postJSON("/api/leads/roi", `{"email":"ops@acme.com","stores":40}`))
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp handlers.LeadAccepted
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "accepted", resp.Status)
		assert.NotEmpty(t, resp.ID)
		assert.EqualValues(t, 1, env.collector.calls.Load())
	})

	t.Run("roi lead invalid email", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postJSON("/api/leads/roi", `{"email":""}`))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"required"`)
	})

	t.Run("demo lead validation", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(postJSON("/api/leads/demo", `{"fullName":"Jane","email":"jane@acme.com"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"company":"required"`)
	})

	t.Run("estimate bounds hourly cost exponent", func(t *testing.T) {
		env := newEnv(t)
		tests := []struct{ cost, want string }{
			{`"1e-4000000"`, "25"},
			{`1e-4000000`, "25"},
			{`"1e9"`, "100"},
			{`"-1e9"`, "10"},
		}
		for _, tt := range tests {
			start := time.Now()
			rec := env.do(postJSON("/api/roi/estimate", `{"hourlyCost":`+tt.cost+`}`))
			require.Equal(t, http.StatusOK, rec.Code, tt.cost)
			assert.Less(t, time.Since(start), time.Second, tt.cost)

			var resp handlers.EstimateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Inputs.HourlyCost.String(), tt.cost)
		}
	})

	t.Run("rate limit ignores forwarded client headers", func(t *testing.T) {
		env := newEnv(t, func(c *config.Config) {
			c.Leads.RequestsPerMinute = 1
			c.Leads.Burst = 1
		})

		codes := make([]int, 0, 5)
		for i := 0; i < 5; i++ {
			req := postJSON("/api/leads/roi", `{"email":"ops@acme.com"}`)
			req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i+1))
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
			codes = append(codes, env.do(req).Code)
		}

		assert.Equal(t, []int{202, 429, 429, 429, 429}, codes)
		assert.EqualValues(t, 1, env.collector.calls.Load())
	})

	t.Run("unknown api route", func(t *testing.T) {
		env := newEnv(t)
		rec := env.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"not_found"`)
	})

	t.Run("demo lead collector error", func(t *testing.T) {
		env := newEnv(t)
		env.collector.respond(http.StatusUnprocessableEntity, `{"error":"Form is disabled"}`)

		rec := env.do(postJSON("/api/leads/demo", `{"fullName":"Jane","email":"jane@acme.com","company":"Acme"}`))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Form is disabled")
	})
}

func TestInfra(t *testing.T) {
	env := newEnv(t)

	tests := []struct {
		path        string
		contentType string
		wantBody    string
	}{
		{"/health", "application/json", `"status":"healthy"`},
		{"/healthz", "application/json", `"status":"ok"`},
		{"/robots.txt", "text/plain; charset=utf-8", "Sitemap: https://plexoapp.com/sitemap.xml"},
		{"/sitemap.xml", "application/xml; charset=utf-8", "<loc>https://plexoapp.com/es/features/tasks</loc>"},
		{"/metrics", "", "plexo_roi_estimates_total"},
		{"/static/styles.css", "", "body{}"},
	}

	// make sure the counter has at least one sample
	env.do(httptest.NewRequest(http.MethodGet, "/roi-calculator", nil))

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
