package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Only enable behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	Site  SiteConfig
	Leads LeadsConfig
	Email EmailConfig
	Otel  OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SiteConfig holds public site settings used for links, SEO and locales
type SiteConfig struct {
	// BaseURL is the public origin used for canonical URLs and the sitemap
	BaseURL string `env:"BASE_URL" envDefault:"https://plexoapp.com"`
	// SiteName appears in OpenGraph and JSON-LD metadata
	SiteName string `env:"SITE_NAME" envDefault:"Plexo"`
	// DefaultLocale is served without a path prefix
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
	// Locales lists every supported locale, default first
	Locales []string `env:"LOCALES" envDefault:"en,es" envSeparator:","`
	// LocaleDetection redirects unprefixed requests based on Accept-Language
	LocaleDetection bool `env:"LOCALE_DETECTION" envDefault:"true"`
	// SupportEmail is shown to users when a lead submission fails
	SupportEmail string `env:"SUPPORT_EMAIL" envDefault:"sales@plexoapp.com"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LeadsConfig holds the third-party form collector settings
type LeadsConfig struct {
	// ROIEndpoint receives ROI calculator report requests
	ROIEndpoint string `env:"LEADS_ROI_ENDPOINT" envDefault:"https://formspree.io/f/mvzbredr"`
	// DemoEndpoint receives demo requests
	DemoEndpoint string `env:"LEADS_DEMO_ENDPOINT" envDefault:"https://formspree.io/f/xdkovpgr"`
	// Timeout bounds a single POST to a collector
	Timeout time.Duration `env:"LEADS_TIMEOUT" envDefault:"10s"`
	// RequestsPerMinute per client IP across lead endpoints
	RequestsPerMinute int `env:"LEADS_RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	// Burst is the token bucket size per client IP
	Burst int `env:"LEADS_RATE_LIMIT_BURST" envDefault:"5"`
}

// EmailConfig holds the optional sales notification settings
type EmailConfig struct {
	// Enabled determines if notification emails are sent
	Enabled bool `env:"EMAIL_ENABLED" envDefault:"false"`
	// MailgunDomain is the Mailgun domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// FromEmail is the default from email address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@plexoapp.com"`
	// FromName is the default from name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"Plexo Website"`
	// NotifyTo receives a copy of every lead
	NotifyTo string `env:"EMAIL_NOTIFY_TO" envDefault:"sales@plexoapp.com"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// OtelConfig holds OpenTelemetry configuration.
// Tracing is disabled when ExporterEndpoint is empty.
type OtelConfig struct {
	ExporterEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ServiceName      string  `env:"OTEL_SERVICE_NAME"            envDefault:"plexo-website"`
	SamplingRate     float64 `env:"OTEL_SAMPLING_RATE"           envDefault:"1.0"`
}

// Enabled returns true when an OTLP endpoint is configured.
func (c OtelConfig) Enabled() bool {
	return c.ExporterEndpoint != ""
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express
func (c *Config) Validate() error {
	if len(c.Site.Locales) == 0 {
		return fmt.Errorf("LOCALES must list at least one locale")
	}
	found := false
	for _, l := range c.Site.Locales {
		if l == c.Site.DefaultLocale {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("DEFAULT_LOCALE %q is not listed in LOCALES", c.Site.DefaultLocale)
	}
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
	if c.Leads.RequestsPerMinute <= 0 {
		return fmt.Errorf("LEADS_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("base_url", cfg.Site.BaseURL),
		slog.Any("locales", cfg.Site.Locales),
		slog.Bool("email_enabled", cfg.Email.Enabled && cfg.Email.IsConfigured()),
	)

	return cfg, nil
}
