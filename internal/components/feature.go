package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/site"
)

// FeaturePage is the body of /features/{slug}.
func FeaturePage(p *i18n.Printer, f site.Feature) g.Node {
	mock := dashboardMocks[f.Slug]

	caps := make([]int, site.CapabilityCount)
	for i := range caps {
		caps[i] = i + 1
	}

	return g.Group([]g.Node{
		Section(
			Class("pt-32 pb-16 sm:pt-40"),
			Div(
				Class("container mx-auto px-4 sm:px-6 lg:px-8 text-center max-w-3xl"),
				Span(
					Class("inline-flex items-center gap-2 badge badge-soft badge-"+f.Color+" px-4 py-3 font-semibold text-xs"),
					Icon(f.Icon+" size-4", ""),
					g.Text(p.T(f.Msg("badge"))),
				),
				H1(Class("mt-6 font-extrabold text-4xl sm:text-5xl tracking-tight"), g.Text(p.T(f.Msg("title")))),
				P(Class("mt-6 text-lg text-base-content/70"), g.Text(p.T(f.Msg("subtitle")))),
				Div(Class("mt-10"), PrimaryLink(p.Path("/demo"), p.T("FeaturePage.seeInAction"))),
			),
			Div(
				Class("mt-16 max-w-5xl mx-auto px-4 sm:px-6 lg:px-8"),
				DashboardMockup(mock),
			),
		),

		Section(
			Class("py-20 bg-base-200"),
			Div(
				Class("container mx-auto px-4 sm:px-6 lg:px-8"),
				SectionHeader("capabilities", "", p.T("FeaturePage.capabilitiesTitle"), ""),
				Div(
					Class("grid sm:grid-cols-2 gap-6 mt-12 max-w-5xl mx-auto"),
					g.Group(g.Map(caps, func(n int) g.Node {
						return Div(
							Class("card bg-base-100 border border-base-300"),
							Div(
								Class("card-body"),
								H3(Class("font-semibold text-lg"), g.Text(p.T(f.Msg(fmt.Sprintf("cap%dTitle", n))))),
								P(Class("text-base-content/70 leading-relaxed"), g.Text(p.T(f.Msg(fmt.Sprintf("cap%dDesc", n))))),
							),
						)
					})),
				),
			),
		),

		g.If(len(mock.Mobile) > 0, featureMobileSection(p, mock)),

		Section(
			Class("py-20"),
			Div(
				Class("max-w-3xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
				H2(Class("font-extrabold text-3xl sm:text-4xl"), g.Text(p.T("FeaturePage.ctaTitle"))),
				P(Class("mt-4 text-lg text-base-content/70"), g.Text(p.T("FeaturePage.ctaSubtitle"))),
				Div(
					Class("mt-10 flex flex-col sm:flex-row justify-center gap-4"),
					PrimaryLink(p.Path("/demo"), p.T("FeaturePage.bookDemo")),
					GhostLink(p.Path("/")+"#features", p.T("FeaturePage.exploreAll")),
				),
			),
		),
	})
}

// DashboardMockup draws a browser window around sample data.
func DashboardMockup(m dashboardMock) g.Node {
	return Div(
		Class("rounded-box border border-base-300 bg-base-100 shadow-2xl overflow-hidden"),
		g.Attr("aria-hidden", "true"),
		Div(
			Class("flex items-center gap-1.5 px-4 py-3 bg-base-200 border-b border-base-300"),
			Span(Class("size-3 rounded-full bg-error/60")),
			Span(Class("size-3 rounded-full bg-warning/60")),
			Span(Class("size-3 rounded-full bg-success/60")),
			Span(Class("ml-4 text-xs text-base-content/50"), g.Text("app.plexoapp.com")),
		),
		Div(
			Class("p-6"),
			P(Class("font-semibold"), g.Text(m.Title)),
			Div(
				Class("grid grid-cols-3 gap-4 mt-4"),
				g.Group(g.Map(m.Stats, func(s mockStat) g.Node {
					return Div(
						Class("rounded-box border border-base-300 p-3"),
						P(Class("text-xs text-base-content/60"), g.Text(s.Label)),
						P(Class("mt-1 font-extrabold text-xl text-"+s.Color), g.Text(s.Value)),
					)
				})),
			),
			Ul(
				Class("mt-6 space-y-3"),
				g.Group(g.Map(m.Rows, func(r mockRow) g.Node {
					return Li(
						Class("rounded-box border border-base-300 p-3"),
						Div(
							Class("flex justify-between items-center gap-4"),
							Div(
								P(Class("text-sm font-medium"), g.Text(r.Label)),
								P(Class("text-xs text-base-content/50"), g.Text(r.Meta)),
							),
							Span(Class("badge badge-sm badge-"+r.Color), g.Text(r.Status)),
						),
						Progress(
							Class("progress progress-"+r.Color+" mt-2 h-1.5"),
							Value(fmt.Sprint(r.Progress)),
							Max("100"),
						),
					)
				})),
			),
		),
	)
}

func featureMobileSection(p *i18n.Printer, m dashboardMock) g.Node {
	return Section(
		Class("py-20 overflow-hidden"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8 grid lg:grid-cols-2 gap-12 items-center"),
			Div(
				Pill(p.T("FeaturePage.mobileBadge")),
				H2(Class("mt-4 font-extrabold text-3xl sm:text-4xl"), g.Text(p.T("FeaturePage.mobileTitle"))),
				P(Class("mt-4 text-lg text-base-content/70 leading-relaxed"), g.Text(p.T("FeaturePage.mobileSubtitle"))),
			),
			Div(
				Class("flex justify-center"),
				Div(
					Class("w-64 bg-neutral rounded-[2.5rem] p-3 shadow-2xl"),
					g.Attr("aria-hidden", "true"),
					Ul(
						Class("bg-base-100 rounded-[2rem] p-4 pt-8 space-y-2"),
						g.Group(g.Map(m.Mobile, func(r mockRow) g.Node {
							icon := "lucide--circle size-4 text-base-content/40"
							if r.Done {
								icon = "lucide--check-circle-2 size-4 text-success"
							}
							return Li(
								Class("flex items-center gap-2.5 rounded-box border border-base-300 px-3 py-2.5 text-xs font-medium"),
								Icon(icon, ""),
								g.Text(r.Label),
							)
						})),
					),
				),
			),
		),
	)
}
