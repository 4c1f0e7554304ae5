package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter renders numbers for display. Values are rounded half-up
// to whole units first; the formatted string never feeds back into math.
type NumberFormatter interface {
	FormatNumber(locale string, v decimal.Decimal) string
	FormatCurrency(locale string, v decimal.Decimal) string
}

// Formatter groups digits with the CLDR conventions of each locale.
type Formatter struct {
	tag func(locale string) language.Tag
}

// NewFormatter uses the bundle's locale tags.
func NewFormatter(b *Bundle) *Formatter {
	return &Formatter{tag: b.Tag}
}

func (f *Formatter) FormatNumber(locale string, v decimal.Decimal) string {
	return FormatInt(f.tag(locale), v.Round(0).IntPart())
}

// FormatCurrency prefixes the grouped number with "$" in every locale.
func (f *Formatter) FormatCurrency(locale string, v decimal.Decimal) string {
	return "$" + f.FormatNumber(locale, v)
}

// FormatDecimal keeps up to maxFrac fraction digits, e.g. 2.4 or 2,4.
func FormatDecimal(tag language.Tag, v decimal.Decimal, maxFrac int) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(v.Round(int32(maxFrac)).InexactFloat64(), number.MaxFractionDigits(maxFrac)))
}

// FormatInt groups n per tag, e.g. 194,850 in English and 194.850 in Spanish.
func FormatInt(tag language.Tag, n int64) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(n, number.MaxFractionDigits(0)))
}
