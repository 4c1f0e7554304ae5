// Package i18n loads the site's message catalogs and binds them to a
// request's locale.
//
// Message IDs are "Namespace.key". Catalogs are nested JSON files, one per
// locale, embedded in the binary. A message missing from a locale falls back
// to the default locale; a message missing everywhere renders as its ID.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message IDs for a locale.
type Translator interface {
	// T renders the message with optional template data.
	T(locale, id string, data map[string]any) string
	// Plural picks the plural form for count. data may be nil.
	Plural(locale, id string, count int, data map[string]any) string
}

// Bundle is the loaded set of catalogs plus one localizer per locale.
type Bundle struct {
	log           *slog.Logger
	bundle        *goi18n.Bundle
	defaultLocale string
	locales       []string
	tags          []language.Tag
	localizers    map[string]*goi18n.Localizer
}

// NewBundle loads the embedded catalogs for the configured locales.
func NewBundle(cfg *config.Config, log *slog.Logger) (*Bundle, error) {
	return LoadBundle(localeFS, "locales", cfg.Site.DefaultLocale, cfg.Site.Locales, log)
}

// LoadBundle reads dir/<locale>.json from fsys for every locale.
// defaultLocale must be one of locales.
func LoadBundle(fsys fs.FS, dir, defaultLocale string, locales []string, log *slog.Logger) (*Bundle, error) {
	if !slices.Contains(locales, defaultLocale) {
		return nil, fmt.Errorf("default locale %q not in %v", defaultLocale, locales)
	}

	defTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale: %w", err)
	}

	b := &Bundle{
		log:           log.With(logger.Scope("i18n")),
		bundle:        goi18n.NewBundle(defTag),
		defaultLocale: defaultLocale,
		localizers:    make(map[string]*goi18n.Localizer, len(locales)),
	}
	b.bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", loc, err)
		}
		path := dir + "/" + loc + ".json"
		mf, err := b.bundle.LoadMessageFileFS(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		b.log.Debug("message catalog loaded",
			slog.String("locale", loc),
			slog.Int("messages", len(mf.Messages)),
		)

		b.locales = append(b.locales, loc)
		b.tags = append(b.tags, tag)
		b.localizers[loc] = goi18n.NewLocalizer(b.bundle, loc, defaultLocale)
	}

	return b, nil
}

// DefaultLocale is the locale served without a path prefix.
func (b *Bundle) DefaultLocale() string { return b.defaultLocale }

// Locales lists the supported locales, in configuration order.
func (b *Bundle) Locales() []string { return slices.Clone(b.locales) }

// IsSupported reports whether locale has a catalog.
func (b *Bundle) IsSupported(locale string) bool {
	_, ok := b.localizers[locale]
	return ok
}

// Tag returns the language tag for a supported locale, or the default's.
func (b *Bundle) Tag(locale string) language.Tag {
	if i := slices.Index(b.locales, locale); i >= 0 {
		return b.tags[i]
	}
	return b.tags[slices.Index(b.locales, b.defaultLocale)]
}

// Match picks the best supported locale for an Accept-Language header.
// ok is false when nothing matched beyond the default fallback.
func (b *Bundle) Match(acceptLanguage string) (locale string, ok bool) {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return b.defaultLocale, false
	}
	_, idx, conf := language.NewMatcher(b.tags).Match(prefs...)
	if conf == language.No {
		return b.defaultLocale, false
	}
	return b.locales[idx], true
}

// Has reports whether id resolves in locale, counting default-locale fallback.
func (b *Bundle) Has(locale, id string) bool {
	_, err := b.localizer(locale).Localize(&goi18n.LocalizeConfig{MessageID: id})
	return err == nil
}

func (b *Bundle) T(locale, id string, data map[string]any) string {
	return b.localize(locale, &goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

func (b *Bundle) Plural(locale, id string, count int, data map[string]any) string {
	return b.localize(locale, &goi18n.LocalizeConfig{MessageID: id, TemplateData: data, PluralCount: count})
}

func (b *Bundle) localize(locale string, lc *goi18n.LocalizeConfig) string {
	msg, err := b.localizer(locale).Localize(lc)
	if err != nil {
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			b.log.Warn("missing message", slog.String("locale", locale), slog.String("id", lc.MessageID))
		} else {
			b.log.Error("localize failed", slog.String("id", lc.MessageID), logger.Error(err))
		}
		if msg == "" {
			return lc.MessageID
		}
	}
	return msg
}

func (b *Bundle) localizer(locale string) *goi18n.Localizer {
	if l, ok := b.localizers[locale]; ok {
		return l
	}
	return b.localizers[b.defaultLocale]
}
