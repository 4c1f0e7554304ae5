package components

import (
	"fmt"

	"github.com/shopspring/decimal"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/site"
)

// Home is the landing page body.
func Home(p *i18n.Printer) g.Node {
	return g.Group([]g.Node{
		Hero(p),
		Problem(p),
		Features(p),
		HowItWorks(p),
		MobileShowcase(p),
		Pricing(p),
		FAQ(p),
		CTABanner(p),
	})
}

func Hero(p *i18n.Printer) g.Node {
	stats := []struct {
		Label, Value, Color string
	}{
		{p.T("Hero.statTasks"), "248", "primary"},
		{p.T("Hero.statCompliance"), "94%", "success"},
		{p.T("Hero.statAudits"), "12", "warning"},
		{p.T("Hero.statCampaigns"), "6", "secondary"},
	}
	notifications := []struct {
		Icon, Text string
	}{
		{"lucide--check-circle", p.T("Hero.notifTaskDone")},
		{"lucide--clipboard-list", p.T("Hero.notifAuditDue")},
		{"lucide--megaphone", p.T("Hero.notifCampaign")},
	}

	return Section(
		ID("hero"),
		Class("relative pt-32 pb-20 sm:pt-40 sm:pb-28 overflow-hidden"),
		Div(Class("absolute inset-0 -z-1 bg-linear-to-br from-primary/5 via-secondary/5 to-transparent")),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			H1(
				Class("font-extrabold text-4xl sm:text-5xl lg:text-6xl tracking-tight"),
				g.Text(p.T("Hero.titleLead")),
				Br(),
				Span(Class("bg-linear-to-r from-primary to-secondary bg-clip-text text-transparent"), g.Text(p.T("Hero.titleHighlight"))),
			),
			P(Class("mt-6 max-w-2xl mx-auto text-lg sm:text-xl text-base-content/70"), g.Text(p.T("Hero.subtitle"))),
			Div(
				Class("mt-10 flex flex-col sm:flex-row justify-center gap-4"),
				PrimaryLink(p.Path("/demo"), p.T("Hero.bookDemo")),
				GhostLink("#features", p.T("Hero.seeIncluded")),
			),
		),
		Div(
			Class("relative mt-16 max-w-5xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("card bg-base-100 border border-base-300 shadow-2xl"),
				Div(
					Class("card-body grid grid-cols-2 lg:grid-cols-4 gap-4"),
					g.Group(g.Map(stats, func(s struct{ Label, Value, Color string }) g.Node {
						return Div(
							Class("rounded-box border border-base-300 p-4"),
							P(Class("text-xs font-medium text-base-content/60"), g.Text(s.Label)),
							P(Class(fmt.Sprintf("mt-1 text-2xl font-extrabold text-%s", s.Color)), g.Text(s.Value)),
						)
					})),
				),
			),
			Div(
				Class("hidden lg:flex flex-col gap-3 absolute -right-4 top-8"),
				g.Group(g.Map(notifications, func(n struct{ Icon, Text string }) g.Node {
					return Div(
						Class("flex items-center gap-2 bg-base-100 shadow-lg rounded-box px-4 py-2 text-sm font-medium"),
						Icon(n.Icon+" size-4 text-success", ""),
						g.Text(n.Text),
					)
				})),
			),
		),
	)
}

func Problem(p *i18n.Printer) g.Node {
	pains := []struct {
		Icon string
		N    int
	}{
		{"lucide--message-square-x", 1},
		{"lucide--eye-off", 2},
		{"lucide--hourglass", 3},
	}

	return Section(
		Class("py-20 sm:py-28 bg-base-200"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center max-w-3xl mx-auto"),
				H2(
					Class("font-extrabold text-3xl sm:text-4xl"),
					g.Text(p.T("Problem.title")+" "),
					Span(Class("text-error"), g.Text(p.T("Problem.titleHighlight"))),
				),
				P(Class("mt-4 text-lg text-base-content/70"), g.Text(p.T("Problem.subtitle"))),
			),
			Div(
				Class("grid md:grid-cols-3 gap-8 mt-16"),
				g.Group(g.Map(pains, func(pain struct {
					Icon string
					N    int
				}) g.Node {
					return Div(
						Class("card bg-base-100 border border-base-300"),
						Div(
							Class("card-body"),
							IconBadge(pain.Icon, "error"),
							H3(Class("mt-4 font-semibold text-lg"), g.Text(p.T(fmt.Sprintf("Problem.pain%dTitle", pain.N)))),
							P(Class("text-base-content/70 leading-relaxed"), g.Text(p.T(fmt.Sprintf("Problem.pain%dDesc", pain.N)))),
						),
					)
				})),
			),
		),
	)
}

// Features lists every product module and links to its page.
func Features(p *i18n.Printer) g.Node {
	return Section(
		Class("py-20 sm:py-28"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeader("features", p.T("Features.badge"), p.T("Features.title"), p.T("Features.subtitle")),
			Div(
				Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6 mt-16"),
				g.Group(g.Map(site.Features, func(f site.Feature) g.Node {
					return A(
						Href(p.Path(f.Path())),
						Class("group card border border-base-300 hover:border-primary/50 hover:shadow-lg transition-all"),
						Div(
							Class("card-body"),
							IconBadge(f.Icon, f.Color),
							H3(Class("mt-4 font-semibold text-lg"), g.Text(p.T(f.Msg("badge")))),
							P(Class("text-sm text-base-content/70 leading-relaxed"), g.Text(p.T(f.Msg("summary")))),
							Span(
								Class("mt-2 inline-flex items-center gap-1 text-sm font-medium text-primary"),
								g.Text(p.T("Features.learnMore")),
								Icon("lucide--arrow-right size-4 group-hover:translate-x-1 transition-transform", ""),
							),
						),
					)
				})),
			),
		),
	)
}

func HowItWorks(p *i18n.Printer) g.Node {
	steps := []struct {
		N    int
		Icon string
	}{
		{1, "lucide--store"},
		{2, "lucide--book-open-check"},
		{3, "lucide--line-chart"},
	}

	return Section(
		Class("py-20 sm:py-28 bg-base-200"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeader("how-it-works", p.T("HowItWorks.badge"), p.T("HowItWorks.title"), p.T("HowItWorks.subtitle")),
			Ol(
				Class("grid md:grid-cols-3 gap-8 mt-16"),
				g.Group(g.Map(steps, func(s struct {
					N    int
					Icon string
				}) g.Node {
					return Li(
						Class("relative text-center"),
						Div(
							Class("mx-auto flex items-center justify-center size-16 rounded-full bg-primary text-primary-content text-2xl font-extrabold shadow-lg shadow-primary/25"),
							g.Text(fmt.Sprint(s.N)),
						),
						P(Class("mt-6 text-xs font-semibold uppercase tracking-wide text-primary"), g.Textf("%s %d", p.T("HowItWorks.stepLabel"), s.N)),
						H3(Class("mt-2 font-semibold text-xl"), g.Text(p.T(fmt.Sprintf("HowItWorks.step%dTitle", s.N)))),
						P(Class("mt-2 text-base-content/70"), g.Text(p.T(fmt.Sprintf("HowItWorks.step%dDesc", s.N)))),
					)
				})),
			),
		),
	)
}

var phoneTasks = []struct {
	Title  string
	Store  string
	Urgent bool
	Done   bool
}{
	{"Restock endcap display", "Store #12", true, false},
	{"Opening checklist", "Store #12", false, true},
	{"Photo: promo signage", "Store #12", false, false},
	{"Cold chain log", "Store #12", false, true},
}

func MobileShowcase(p *i18n.Printer) g.Node {
	return Section(
		ID("mobile"),
		Class("py-20 sm:py-28 overflow-hidden"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8 grid lg:grid-cols-2 gap-12 lg:gap-20 items-center"),
			Div(
				P(Class("text-sm font-semibold uppercase tracking-wide text-primary"), g.Text(p.T("MobileShowcase.sectionLabel"))),
				H2(Class("mt-3 font-extrabold text-3xl sm:text-4xl"), g.Text(p.T("MobileShowcase.title"))),
				P(Class("mt-4 text-lg text-base-content/70 leading-relaxed"), g.Text(p.T("MobileShowcase.subtitle"))),
				Ul(
					Class("mt-8 space-y-4"),
					g.Group(g.Map([]int{1, 2, 3, 4}, func(n int) g.Node {
						return Li(
							Class("flex items-start gap-3"),
							Icon("lucide--check-circle-2 size-5 text-success mt-0.5", ""),
							Span(g.Text(p.T(fmt.Sprintf("MobileShowcase.feature%d", n)))),
						)
					})),
				),
				Div(Class("mt-8"), PrimaryLink(p.Path("/demo"), p.T("MobileShowcase.ctaText"))),
			),
			Div(
				Class("flex justify-center lg:justify-end"),
				PhoneMockup(p),
			),
		),
	)
}

// PhoneMockup is the decorative mobile app screen.
func PhoneMockup(p *i18n.Printer) g.Node {
	return Div(
		Class("relative w-64 sm:w-72 bg-neutral rounded-[2.5rem] p-3 shadow-2xl"),
		g.Attr("aria-hidden", "true"),
		Div(
			Class("bg-base-100 rounded-[2rem] overflow-hidden"),
			Div(
				Class("bg-primary px-6 pt-8 pb-4 text-primary-content"),
				P(Class("text-xs opacity-70"), g.Text(p.T("MobileShowcase.greeting"))),
				P(Class("mt-1 font-bold text-lg"), g.Text(p.T("MobileShowcase.myTasks"))),
				Div(
					Class("mt-3 flex gap-2 text-xs"),
					Span(Class("badge badge-sm"), g.Text(p.T("MobileShowcase.pending"))),
					Span(Class("badge badge-sm badge-success"), g.Text(p.T("MobileShowcase.done"))),
				),
			),
			Ul(
				Class("p-4 space-y-2"),
				g.Group(g.Map(phoneTasks, func(t struct {
					Title  string
					Store  string
					Urgent bool
					Done   bool
				}) g.Node {
					return Li(
						Class("flex items-center gap-3 rounded-box border border-base-300 p-3"),
						g.If(t.Done, Icon("lucide--check-circle-2 size-4 text-success", "")),
						g.If(!t.Done, Icon("lucide--circle size-4 text-base-content/40", "")),
						Div(
							Class("flex-1 min-w-0"),
							P(Class("text-xs font-medium truncate"), g.Text(t.Title)),
							P(Class("text-[10px] text-base-content/50"), g.Text(t.Store)),
						),
						g.If(t.Urgent, Span(Class("badge badge-error badge-xs"), g.Text(p.T("MobileShowcase.urgent")))),
					)
				})),
			),
			Div(
				Class("mx-4 mb-4 rounded-box bg-success/10 p-3 text-xs"),
				P(Class("font-semibold text-success"), g.Text(p.T("MobileShowcase.toastTitle"))),
				P(Class("text-base-content/70"), g.Text(p.T("MobileShowcase.toastBody"))),
			),
		),
	)
}

type pricingTier struct {
	Key      string
	Monthly  decimal.Decimal
	Annual   decimal.Decimal
	Features int
	Popular  bool
	Custom   bool
}

var pricingTiers = []pricingTier{
	{Key: "starter", Monthly: decimal.NewFromInt(3), Annual: decimal.RequireFromString("2.4"), Features: 6},
	{Key: "professional", Monthly: decimal.NewFromInt(6), Annual: decimal.RequireFromString("4.8"), Features: 9, Popular: true},
	{Key: "enterprise", Features: 7, Custom: true},
}

// Pricing renders both billing periods. The toggle script switches the
// section's data-billing attribute; annual is shown by default.
func Pricing(p *i18n.Printer) g.Node {
	return Section(
		ID("pricing"),
		Class("py-20 sm:py-28 bg-base-200"),
		g.Attr("data-billing", "annual"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeader("", p.T("Pricing.badge"), p.T("Pricing.title"), p.T("Pricing.subtitle")),
			Div(
				Class("mt-10 flex justify-center items-center gap-3 text-sm font-medium"),
				Span(g.Text(p.T("Pricing.monthly"))),
				Input(
					Type("checkbox"),
					ID("billing-toggle"),
					Class("toggle toggle-primary"),
					g.Attr("checked"),
					g.Attr("aria-label", p.T("Pricing.annual")),
				),
				Span(g.Text(p.T("Pricing.annual"))),
				Span(Class("badge badge-success badge-sm billing-annual"), g.Text(p.T("Pricing.save"))),
			),
			Div(
				Class("grid lg:grid-cols-3 gap-8 max-w-5xl mx-auto mt-12"),
				g.Group(g.Map(pricingTiers, func(t pricingTier) g.Node {
					return pricingCard(p, t)
				})),
			),
		),
	)
}

func pricingCard(p *i18n.Printer, t pricingTier) g.Node {
	msg := func(key string) string { return p.T("Pricing." + t.Key + key) }

	cardClass := "relative card bg-base-100 border border-base-300"
	if t.Popular {
		cardClass = "relative card bg-base-100 border-2 border-primary shadow-xl shadow-primary/10 lg:scale-105"
	}

	var price g.Node
	if t.Custom {
		price = Div(
			P(Class("text-4xl font-extrabold"), g.Text(p.T("Pricing.custom"))),
			P(Class("mt-1 text-sm text-base-content/60"), g.Text(p.T("Pricing.customNote"))),
		)
	} else {
		price = Div(
			Div(
				Class("flex items-baseline gap-1"),
				Span(Class("text-4xl font-extrabold billing-annual"), g.Text(p.Price(t.Annual))),
				Span(Class("text-4xl font-extrabold billing-monthly"), g.Text(p.Price(t.Monthly))),
				Span(Class("text-base-content/60"), g.Text(p.T("Pricing.perUser"))),
			),
			P(Class("mt-1 text-xs text-base-content/50 billing-annual"), g.Text(p.T("Pricing.billedAnnually"))),
			P(Class("mt-1 text-xs text-base-content/50 billing-monthly"), g.Text(p.T("Pricing.billedMonthly"))),
		)
	}

	ctaHref, ctaText, ctaClass := p.Path("/demo"), p.T("Pricing.startTrial"), "btn btn-block"
	if t.Custom {
		ctaHref, ctaText = "mailto:sales@plexoapp.com", p.T("Pricing.talkToSales")
	}
	if t.Popular {
		ctaClass = "btn btn-primary btn-block"
	}

	features := make([]int, t.Features)
	for i := range features {
		features[i] = i + 1
	}

	return Div(
		Class(cardClass),
		g.If(t.Popular, Div(
			Class("absolute -top-3.5 left-1/2 -translate-x-1/2"),
			Span(Class("badge badge-primary"), g.Text(p.T("Pricing.popular"))),
		)),
		Div(
			Class("card-body"),
			H3(Class("font-bold text-lg"), g.Text(msg("Name"))),
			P(Class("text-sm text-base-content/60"), g.Text(msg("Summary"))),
			Div(Class("my-6"), price),
			A(Href(ctaHref), Class(ctaClass), g.Text(ctaText)),
			Ul(
				Class("mt-8 space-y-3"),
				g.Group(g.Map(features, func(n int) g.Node {
					return Li(
						Class("flex items-start gap-3 text-sm text-base-content/80"),
						Icon("lucide--check size-5 text-success shrink-0", ""),
						g.Text(msg(fmt.Sprintf("F%d", n))),
					)
				})),
			),
		),
	)
}

// FAQCount is the number of qN/aN pairs in the FAQ namespace.
const FAQCount = 7

func FAQ(p *i18n.Printer) g.Node {
	items := make([]int, FAQCount)
	for i := range items {
		items[i] = i + 1
	}

	return Section(
		Class("py-20 sm:py-28"),
		Div(
			Class("max-w-3xl mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeader("faq", p.T("FAQ.badge"), p.T("FAQ.title"), ""),
			Div(
				Class("mt-12 space-y-3"),
				g.Group(g.Map(items, func(n int) g.Node {
					return g.El("details",
						Class("collapse collapse-arrow border border-base-300 bg-base-100"),
						g.El("summary", Class("collapse-title font-semibold"), g.Text(p.T(fmt.Sprintf("FAQ.q%d", n)))),
						Div(Class("collapse-content text-base-content/70 leading-relaxed"), P(g.Text(p.T(fmt.Sprintf("FAQ.a%d", n))))),
					)
				})),
			),
		),
	)
}

func CTABanner(p *i18n.Printer) g.Node {
	return Section(
		Class("py-20 sm:py-28 bg-primary text-primary-content relative overflow-hidden"),
		Div(
			Class("relative max-w-4xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			H2(Class("font-extrabold text-3xl sm:text-4xl"), g.Text(p.T("CTABanner.title"))),
			P(Class("mt-4 text-lg opacity-80 max-w-2xl mx-auto"), g.Text(p.T("CTABanner.subtitle"))),
			Div(
				Class("mt-10 flex flex-col sm:flex-row justify-center gap-4"),
				A(Href(p.Path("/demo")), Class("btn btn-lg bg-base-100 text-primary border-0"), g.Text(p.T("CTABanner.startTrial"))),
				A(Href("mailto:sales@plexoapp.com"), Class("btn btn-lg btn-outline border-primary-content/30 text-primary-content"), g.Text(p.T("CTABanner.talkToSales"))),
			),
		),
	)
}
