package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
)

func NotFound(p *i18n.Printer) g.Node {
	return statusPage(p, "404", "NotFound.badge", "NotFound.subtitle", "NotFound.backToHomepage")
}

// BadRequest is shown when a posted form cannot be parsed.
func BadRequest(p *i18n.Printer) g.Node {
	return statusPage(p, "400", "BadRequest.title", "BadRequest.subtitle", "BadRequest.backToHomepage")
}

func statusPage(p *i18n.Printer, code, titleKey, subtitleKey, backKey string) g.Node {
	return Section(
		Class("flex items-center min-h-[70vh] pt-32 pb-20"),
		Div(
			Class("max-w-xl mx-auto px-4 text-center"),
			P(Class("font-extrabold text-8xl text-primary/20"), g.Text(code)),
			H1(Class("mt-4 font-bold text-3xl"), g.Text(p.T(titleKey))),
			P(Class("mt-4 text-lg text-base-content/70"), g.Text(p.T(subtitleKey))),
			Div(Class("mt-10"), PrimaryLink(p.Path("/"), p.T(backKey))),
		),
	)
}
