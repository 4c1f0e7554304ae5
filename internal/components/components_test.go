package components_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/malamapl09/plexo-marketing/internal/components"
	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/internal/roi"
	"github.com/malamapl09/plexo-marketing/internal/seo"
	"github.com/malamapl09/plexo-marketing/internal/site"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

func testPrinter(t *testing.T, locale, path string) *i18n.Printer {
	t.Helper()
	cfg := &config.Config{Site: config.SiteConfig{DefaultLocale: "en", Locales: []string{"en", "es"}}}
	b, err := i18n.NewBundle(cfg, logger.Discard())
	require.NoError(t, err)
	return i18n.NewPrinter(b, i18n.NewFormatter(b), locale, path)
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	return sb.String()
}

func TestLayout(t *testing.T) {
	p := testPrinter(t, "es", "/demo")
	b := seo.NewBuilder(&config.Config{Site: config.SiteConfig{BaseURL: "https://plexoapp.com", SiteName: "Plexo", DefaultLocale: "en", Locales: []string{"en", "es"}}})

	html := render(t, components.Page(p, components.PageConfig{
		Title:      "Reserva una demo | Plexo",
		Alternates: b.Alternates("/demo", "es"),
		JSONLD:     `{"@type":"SoftwareApplication"}`,
		Scripts:    []string{"/static/js/roi.js"},
	}, 2026))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<html lang="es"`)
	assert.Contains(t, html, "<title>Reserva una demo | Plexo</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://plexoapp.com/es/demo">`)
	assert.Contains(t, html, `hreflang="x-default" href="https://plexoapp.com/demo"`)
	assert.Contains(t, html, `<script type="application/ld+json">{"@type":"SoftwareApplication"}</script>`)
	assert.Contains(t, html, `src="/static/js/roi.js"`)
	// header links stay in the active locale and the switcher points at English
	assert.Contains(t, html, `href="/es/roi-calculator"`)
	assert.Contains(t, html, `href="/demo" class="btn btn-ghost btn-xs font-semibold" hreflang="en"`)
	assert.Contains(t, html, "2026")
}

func TestHome(t *testing.T) {
	p := testPrinter(t, "en", "/")
	html := render(t, components.Home(p))

	for _, id := range []string{`id="features"`, `id="how-it-works"`, `id="mobile"`, `id="pricing"`, `id="faq"`} {
		assert.Contains(t, html, id)
	}
	for _, f := range site.Features {
		assert.Contains(t, html, `href="`+f.Path()+`"`)
	}
	assert.Contains(t, html, `data-billing="annual"`)
	assert.Contains(t, html, "$2.4")
	assert.Contains(t, html, "$6")
	assert.Equal(t, components.FAQCount, strings.Count(html, "<details"))
	assert.NotContains(t, html, "Pricing.")
}

func TestFeaturePage(t *testing.T) {
	tests := []struct {
		slug       string
		wantMobile bool
	}{
		{"checklists", true},
		{"gamification", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			f, ok := site.FeatureBySlug(tt.slug)
			require.True(t, ok)
			html := render(t, components.FeaturePage(testPrinter(t, "en", f.Path()), f))

			assert.Contains(t, html, "Key capabilities")
			assert.NotContains(t, html, f.Namespace+".")
			assert.Equal(t, tt.wantMobile, strings.Contains(html, "Works on mobile"))
		})
	}
}

func TestLegalPage(t *testing.T) {
	l, ok := site.LegalBySlug("cookies")
	require.True(t, ok)

	html := render(t, components.LegalPage(testPrinter(t, "en", l.Path()), l, "legal@plexoapp.com"))
	assert.Contains(t, html, "Cookie Policy")
	assert.Contains(t, html, "Last updated: January 15, 2026")
	assert.Contains(t, html, "Managing cookies")
	assert.Contains(t, html, "legal@plexoapp.com")
}

func TestROICalculatorPage(t *testing.T) {
	in := roi.Inputs{StoreCount: 25, TeamMembersPerStore: 15, HoursPerStore: 10, HourlyLaborCost: decimal.NewFromInt(25)}
	base := components.ROIState{Inputs: in, Results: roi.Calculate(in), SupportEmail: "sales@plexoapp.com"}

	t.Run("form view", func(t *testing.T) {
		s := base
		s.View = roi.ViewForm
		html := render(t, components.ROICalculatorPage(testPrinter(t, "en", "/roi-calculator"), s))

		assert.Contains(t, html, `id="roi-form"`)
		assert.Contains(t, html, `name="stores"`)
		assert.Contains(t, html, `min="10" max="100"`)
		assert.Contains(t, html, "150 hours per week, worth $194,850 annually")
		assert.NotContains(t, html, `id="roi-results"`)
	})

	t.Run("results view idle", func(t *testing.T) {
		s := base
		s.View = roi.ViewResults
		s.Status = roi.StatusIdle
		html := render(t, components.ROICalculatorPage(testPrinter(t, "en", "/roi-calculator/results"), s))

		assert.Contains(t, html, "$194,850")
		assert.Contains(t, html, "$16,238")
		assert.Contains(t, html, "Based on 25 stores")
		assert.Contains(t, html, `id="roi-lead-form"`)
		assert.Contains(t, html, `href="/roi-calculator?hourlyCost=25&amp;hoursPerStore=10&amp;stores=25&amp;teamMembersPerStore=15"`)
	})

	t.Run("results view single store in spanish", func(t *testing.T) {
		one := roi.Inputs{StoreCount: 1, TeamMembersPerStore: 1, HoursPerStore: 10, HourlyLaborCost: decimal.NewFromInt(25)}
		s := components.ROIState{Inputs: one, Results: roi.Calculate(one), View: roi.ViewResults}
		html := render(t, components.ROICalculatorPage(testPrinter(t, "es", "/roi-calculator/results"), s))

		assert.Contains(t, html, `action="/es/roi-calculator/report"`)
		assert.NotContains(t, html, "ROICalculatorPage.")
	})

	t.Run("lead success", func(t *testing.T) {
		s := base
		s.View = roi.ViewResults
		s.Status = roi.StatusSuccess
		html := render(t, components.ROICalculatorPage(testPrinter(t, "en", "/roi-calculator/report"), s))

		assert.Contains(t, html, `id="roi-lead-success"`)
		assert.NotContains(t, html, `id="roi-lead-form"`)
	})

	t.Run("lead error keeps form", func(t *testing.T) {
		s := base
		s.View = roi.ViewResults
		s.Status = roi.StatusError
		s.Email = "ops@acme.com"
		html := render(t, components.ROICalculatorPage(testPrinter(t, "en", "/roi-calculator/report"), s))

		assert.Contains(t, html, `id="roi-lead-form"`)
		assert.Contains(t, html, `value="ops@acme.com"`)
		assert.Contains(t, html, "Something went wrong. Please try again or email sales@plexoapp.com.")
	})

	t.Run("invalid email", func(t *testing.T) {
		s := base
		s.View = roi.ViewResults
		s.EmailInvalid = true
		html := render(t, components.ROICalculatorPage(testPrinter(t, "en", "/roi-calculator/report"), s))

		assert.Contains(t, html, "Please enter a valid email address.")
		assert.Contains(t, html, `aria-invalid="true"`)
	})
}

func TestDemoPage(t *testing.T) {
	t.Run("field errors", func(t *testing.T) {
		s := components.DemoState{
			Form:   leads.DemoRequest{Email: "nope", StoreCount: "11-50"},
			Fields: map[string]string{leads.FieldFullName: "required", leads.FieldEmail: "email", leads.FieldCompany: "required"},
		}
		html := render(t, components.DemoPage(testPrinter(t, "en", "/demo"), s))

		assert.Contains(t, html, "Full name is required.")
		assert.Contains(t, html, "Please enter a valid email address.")
		assert.Contains(t, html, "Company name is required.")
		assert.Contains(t, html, `<option value="11-50" selected>11 - 50 stores</option>`)
		assert.NotContains(t, html, `id="demo-error"`)
	})

	t.Run("banner", func(t *testing.T) {
		s := components.DemoState{Error: "Collector says no"}
		html := render(t, components.DemoPage(testPrinter(t, "en", "/demo"), s))
		assert.Contains(t, html, `id="demo-error"`)
		assert.Contains(t, html, "Collector says no")
	})

	t.Run("success", func(t *testing.T) {
		s := components.DemoState{Success: true, Form: leads.DemoRequest{FullName: "Jane", Email: "jane@acme.com"}}
		html := render(t, components.DemoPage(testPrinter(t, "es", "/demo"), s))
		assert.Contains(t, html, `id="demo-success"`)
		assert.Contains(t, html, "Jane")
		assert.Contains(t, html, "jane@acme.com")
		assert.NotContains(t, html, `id="demo-form"`)
	})
}

func TestDemoFieldErrorID(t *testing.T) {
	tests := []struct {
		field, rule, want string
	}{
		{leads.FieldEmail, "required", "DemoPage.errEmailRequired"},
		{leads.FieldEmail, "email", "DemoPage.errEmailInvalid"},
		{leads.FieldStoreCount, "oneof", "DemoPage.errStoreCountInvalid"},
		{leads.FieldMessage, "max", "DemoPage.errMessageTooLong"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, components.DemoFieldErrorID(tt.field, tt.rule), tt.field+"/"+tt.rule)
	}
}
