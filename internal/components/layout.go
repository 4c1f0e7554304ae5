package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/seo"
)

type PageConfig struct {
	Title       string
	Description string
	Alternates  seo.Alternates
	SiteName    string
	OGImage     string
	// JSONLD is an already-encoded structured data document.
	JSONLD  string
	NoIndex bool
	Scripts []string
}

func Layout(p *i18n.Printer, config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = p.T("Metadata.homeTitle")
	}

	if config.Description == "" {
		config.Description = p.T("Metadata.homeDescription")
	}

	if config.SiteName == "" {
		config.SiteName = "Plexo"
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(p.Locale),
			Class("scroll-smooth"),
			g.Attr("data-theme", "plexo"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				g.If(config.NoIndex, Meta(Name("robots"), Content("noindex"))),

				g.If(config.Alternates.Canonical != "", Link(Rel("canonical"), Href(config.Alternates.Canonical))),
				g.Group(g.Map(config.Alternates.Languages, func(a seo.Alternate) g.Node {
					return Link(Rel("alternate"), g.Attr("hreflang", a.Hreflang), Href(a.Href))
				})),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:site_name"), Content(config.SiteName)),
				Meta(g.Attr("property", "og:locale"), Content(p.Locale)),
				g.If(config.Alternates.Canonical != "", Meta(g.Attr("property", "og:url"), Content(config.Alternates.Canonical))),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Meta(Name("twitter:card"), Content("summary_large_image")),
				Meta(Name("twitter:title"), Content(config.Title)),
				Meta(Name("twitter:description"), Content(config.Description)),

				Link(Rel("icon"), Href("/static/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("apple-touch-icon"), Href("/static/favicon.svg")),

				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/daisyui@5")),
				Script(Src("https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),

				g.If(config.JSONLD != "", Script(Type("application/ld+json"), g.Raw(config.JSONLD))),
			),
			Body(
				Class("bg-base-100 text-base-content antialiased"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/mobile-menu.js")),
				g.Group(g.Map(config.Scripts, func(src string) g.Node {
					return Script(Type("module"), Src(src))
				})),
			),
		),
	})
}

// Page wraps content with the header and footer every page shares.
func Page(p *i18n.Printer, config PageConfig, year int, content ...g.Node) g.Node {
	return Layout(p, config,
		SiteHeader(p),
		Main(g.Group(content)),
		PageFooter(p, year),
	)
}
