package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
)

type navLink struct {
	Label string
	Href  string
}

func navLinks(p *i18n.Printer) []navLink {
	home := p.Path("/")
	return []navLink{
		{p.T("Nav.features"), home + "#features"},
		{p.T("Nav.howItWorks"), home + "#how-it-works"},
		{p.T("Nav.pricing"), home + "#pricing"},
		{p.T("Nav.faq"), home + "#faq"},
		{p.T("Nav.roiCalculator"), p.Path("/roi-calculator")},
	}
}

// SiteHeader is the fixed top bar with navigation and the language switcher.
func SiteHeader(p *i18n.Printer) g.Node {
	links := navLinks(p)

	return Header(
		Class("fixed inset-x-0 top-0 z-50 bg-base-100/90 backdrop-blur-md border-b border-base-300"),
		Div(
			Class("flex justify-between items-center h-16 container mx-auto px-4 sm:px-6 lg:px-8"),

			Logo(p),

			Nav(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(links, func(l navLink) g.Node {
					return A(Href(l.Href), Class("text-sm font-medium text-base-content/70 hover:text-primary transition-colors"), g.Text(l.Label))
				})),
			),

			Div(
				Class("hidden md:flex items-center gap-3"),
				LanguageSwitcher(p),
				A(Href(p.Path("/")+"#pricing"), Class("text-sm font-medium text-base-content/70 hover:text-primary"), g.Text(p.T("Nav.login"))),
				A(Href(p.Path("/demo")), Class("btn btn-primary btn-sm"), g.Text(p.T("Nav.bookDemo"))),
			),

			Div(
				Class("md:hidden flex items-center gap-2"),
				LanguageSwitcher(p),
				Button(
					Type("button"),
					Class("btn btn-ghost btn-square btn-sm"),
					g.Attr("data-menu-toggle", "mobile-menu"),
					g.Attr("aria-controls", "mobile-menu"),
					g.Attr("aria-expanded", "false"),
					g.Attr("aria-label", p.T("Nav.toggleMenu")),
					Icon("lucide--menu size-5", ""),
				),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("md:hidden hidden bg-base-100 border-t border-base-300"),
			Div(
				Class("px-4 py-4 space-y-3"),
				g.Group(g.Map(links, func(l navLink) g.Node {
					return A(Href(l.Href), Class("block text-sm font-medium text-base-content/70 hover:text-primary"), g.Text(l.Label))
				})),
				A(Href(p.Path("/")+"#pricing"), Class("btn btn-primary btn-block btn-sm"), g.Text(p.T("Nav.startTrial"))),
			),
		),
	)
}

// LanguageSwitcher links to the current page in the other locale.
func LanguageSwitcher(p *i18n.Printer) g.Node {
	next := p.SwitchLocale()
	return A(
		Href(p.SwitchPath()),
		Class("btn btn-ghost btn-xs font-semibold"),
		g.Attr("hreflang", next),
		g.Attr("aria-label", p.T("LanguageSwitcher.label", "Language", p.T("LanguageSwitcher."+next))),
		g.Text(strings.ToUpper(next)),
	)
}
