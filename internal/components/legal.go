package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/site"
)

func LegalPage(p *i18n.Printer, l site.Legal, supportEmail string) g.Node {
	sections := make([]int, l.Sections)
	for i := range sections {
		sections[i] = i + 1
	}

	return Article(
		Class("pt-32 pb-20 sm:pt-40 max-w-3xl mx-auto px-4 sm:px-6 lg:px-8"),
		H1(Class("font-extrabold text-4xl"), g.Text(p.T(l.Msg("pageTitle")))),
		P(Class("mt-2 text-sm text-base-content/60"), g.Text(p.T("Legal.lastUpdatedLabel", "Date", p.T(l.Msg("lastUpdated"))))),
		P(Class("mt-8 text-lg text-base-content/80 leading-relaxed"), g.Text(p.T(l.Msg("intro")))),
		g.Group(g.Map(sections, func(n int) g.Node {
			heading, body := l.SectionMsg(n)
			return Div(
				Class("mt-10"),
				H2(Class("font-bold text-2xl"), g.Text(p.T(heading))),
				P(Class("mt-3 text-base-content/80 leading-relaxed"), g.Text(p.T(body))),
			)
		})),
		P(
			Class("mt-12 pt-6 border-t border-base-300 text-sm text-base-content/60"),
			g.Text(p.T("Legal.contact", "Email", supportEmail)),
		),
	)
}
