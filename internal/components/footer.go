package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/site"
)

func PageFooter(p *i18n.Printer, year int) g.Node {
	home := p.Path("/")

	product := []navLink{
		{p.T("Nav.features"), home + "#features"},
		{p.T("Nav.pricing"), home + "#pricing"},
		{p.T("Nav.roiCalculator"), p.Path("/roi-calculator")},
		{p.T("Footer.mobileApp"), home + "#mobile"},
	}
	company := []navLink{
		{p.T("Footer.about"), home},
		{p.T("Footer.contact"), "mailto:sales@plexoapp.com"},
		{p.T("Footer.careers"), home},
		{p.T("Footer.blog"), home},
	}
	legal := make([]navLink, 0, len(site.LegalPages))
	for _, l := range site.LegalPages {
		legal = append(legal, navLink{p.T("Footer." + l.Slug), p.Path(l.Path())})
	}

	return Footer(
		Class("bg-neutral text-neutral-content"),
		Div(
			Class("pt-16 pb-8 container mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("gap-8 grid grid-cols-2 md:grid-cols-5"),
				Div(
					Class("col-span-2"),
					Img(Src("/static/logo-light.svg"), Alt("Plexo"), Width("120"), Height("32")),
					P(Class("mt-4 max-w-xs text-sm text-neutral-content/70"), g.Text(p.T("Footer.tagline"))),
				),
				footerColumn(p.T("Footer.product"), product),
				footerColumn(p.T("Footer.company"), company),
				footerColumn(p.T("Footer.legal"), legal),
			),
			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 pt-6 border-t border-neutral-content/10 text-sm text-neutral-content/60"),
				P(g.Text(p.T("Footer.rights", "Year", year))),
				LanguageSwitcher(p),
			),
		),
	)
}

func footerColumn(title string, links []navLink) g.Node {
	return Div(
		Class("col-span-1"),
		P(Class("font-semibold text-sm uppercase tracking-wide"), g.Text(title)),
		Ul(
			Class("flex flex-col space-y-2 mt-4 text-sm text-neutral-content/70"),
			g.Group(g.Map(links, func(l navLink) g.Node {
				return Li(A(Href(l.Href), Class("hover:text-neutral-content"), g.Text(l.Label)))
			})),
		),
	)
}
