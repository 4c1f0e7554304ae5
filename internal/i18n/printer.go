package i18n

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Printer binds a locale and the current page path to the translator and
// number formatter. Views receive one per request.
type Printer struct {
	Locale string

	tr     Translator
	nf     NumberFormatter
	bundle *Bundle
	// path is the current page without its locale prefix.
	path string
}

// NewPrinter binds locale to b. path is the unprefixed page path used by the
// language switcher.
func NewPrinter(b *Bundle, nf NumberFormatter, locale, path string) *Printer {
	if !b.IsSupported(locale) {
		locale = b.DefaultLocale()
	}
	if path == "" {
		path = "/"
	}
	return &Printer{Locale: locale, tr: b, nf: nf, bundle: b, path: path}
}

// T translates id. kv are alternating key/value template data pairs.
func (p *Printer) T(id string, kv ...any) string {
	return p.tr.T(p.Locale, id, pairs(kv))
}

// Plural translates id with the plural form for count.
func (p *Printer) Plural(id string, count int, kv ...any) string {
	return p.tr.Plural(p.Locale, id, count, pairs(kv))
}

func (p *Printer) Number(v decimal.Decimal) string {
	return p.nf.FormatNumber(p.Locale, v)
}

func (p *Printer) Int(n int) string {
	return p.nf.FormatNumber(p.Locale, decimal.NewFromInt(int64(n)))
}

func (p *Printer) Money(v decimal.Decimal) string {
	return p.nf.FormatCurrency(p.Locale, v)
}

// Price renders a per-unit price with cents, e.g. $4.8 or $4,8.
func (p *Printer) Price(v decimal.Decimal) string {
	return "$" + FormatDecimal(p.bundle.Tag(p.Locale), v, 2)
}

// Path prefixes an unprefixed site path with the printer's locale.
func (p *Printer) Path(path string) string {
	return p.bundle.LocalizePath(p.Locale, path)
}

// CurrentPath is the current page without a locale prefix.
func (p *Printer) CurrentPath() string { return p.path }

// SwitchLocale is the locale the language switcher offers.
func (p *Printer) SwitchLocale() string {
	locales := p.bundle.locales
	for i, l := range locales {
		if l == p.Locale {
			return locales[(i+1)%len(locales)]
		}
	}
	return p.bundle.DefaultLocale()
}

// SwitchPath is the current page in the switcher's locale.
func (p *Printer) SwitchPath() string {
	return p.bundle.LocalizePath(p.SwitchLocale(), p.path)
}

// IsDefault reports whether the printer renders the unprefixed locale.
func (p *Printer) IsDefault() bool { return p.Locale == p.bundle.DefaultLocale() }

func pairs(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	data := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		data[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return data
}

type printerKey struct{}

// WithPrinter stores p in ctx.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, printerKey{}, p)
}

// FromContext returns the request's printer, or nil outside a locale group.
func FromContext(ctx context.Context) *Printer {
	p, _ := ctx.Value(printerKey{}).(*Printer)
	return p
}
