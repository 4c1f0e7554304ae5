package components

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/roi"
)

// ROIState is everything the calculator page needs for one render.
type ROIState struct {
	Inputs  roi.Inputs
	Results roi.Results
	View    roi.View
	Status  roi.SubmissionStatus

	// Email is echoed back into the lead form after a failed attempt.
	Email string
	// EmailInvalid marks a lead form rejected before it reached the collector.
	EmailInvalid bool
	RateLimited  bool
	SupportEmail string
}

func ROICalculatorPage(p *i18n.Printer, s ROIState) g.Node {
	var body g.Node
	if s.View == roi.ViewResults {
		body = roiResultsView(p, s)
	} else {
		body = roiFormView(p, s)
	}

	return g.Group([]g.Node{
		Section(
			Class("pt-32 pb-20 sm:pt-40"),
			Div(
				Class("max-w-4xl mx-auto px-4 sm:px-6 lg:px-8"),
				Div(
					Class("text-center"),
					Pill(p.T("ROICalculatorPage.badge")),
					H1(Class("mt-4 font-extrabold text-4xl sm:text-5xl tracking-tight"), g.Text(p.T("ROICalculatorPage.title"))),
					P(Class("mt-4 text-lg text-base-content/70"), g.Text(p.T("ROICalculatorPage.subtitle"))),
				),
				Div(Class("mt-12"), body),
			),
		),
		roiCTA(p),
	})
}

type roiField struct {
	Name   string
	Label  string
	Range  roi.Range
	Value  string
	Prefix string
	Suffix string
	Step   string
}

func roiFields(p *i18n.Printer, in roi.Inputs) []roiField {
	return []roiField{
		{Name: roi.FieldStores, Label: p.T("ROICalculatorPage.labelStores"), Range: roi.StoreCountRange, Value: strconv.Itoa(in.StoreCount), Step: "1"},
		{Name: roi.FieldTeamMembers, Label: p.T("ROICalculatorPage.labelTeamMembers"), Range: roi.TeamMembersRange, Value: strconv.Itoa(in.TeamMembersPerStore), Step: "1"},
		{Name: roi.FieldHours, Label: p.T("ROICalculatorPage.labelHours"), Range: roi.HoursRange, Value: strconv.Itoa(in.HoursPerStore), Suffix: p.T("ROICalculatorPage.suffixHrs"), Step: "1"},
		{Name: roi.FieldHourlyCost, Label: p.T("ROICalculatorPage.labelHourlyCost"), Range: roi.HourlyCostRange, Value: in.HourlyLaborCost.String(), Prefix: "$", Step: "1"},
	}
}

func roiFormView(p *i18n.Printer, s ROIState) g.Node {
	weekly, _, annual := s.Results.Rounded()

	return Form(
		ID("roi-form"),
		Method("post"),
		Action(p.Path("/roi-calculator")),
		Class("card bg-base-100 border border-base-300 shadow-xl"),
		g.Attr("data-locale", p.Locale),
		Div(
			Class("card-body gap-8"),
			H2(Class("font-bold text-xl"), g.Text(p.T("ROICalculatorPage.formTitle"))),
			g.Group(g.Map(roiFields(p, s.Inputs), func(f roiField) g.Node {
				return roiInput(p, f)
			})),
			Div(
				ID("roi-quick-estimate"),
				Class("rounded-box bg-primary/5 border border-primary/20 p-4"),
				g.Attr("aria-live", "polite"),
				Span(Class("badge badge-primary badge-sm"), g.Text(p.T("ROICalculatorPage.quickEstimateBadge"))),
				P(
					Class("mt-2 text-sm"),
					g.Attr("data-template", p.T("ROICalculatorPage.quickEstimate", "Hours", "{hours}", "Annual", "{annual}")),
					g.Text(p.T("ROICalculatorPage.quickEstimate", "Hours", p.Int(int(weekly)), "Annual", p.Money(decimal.NewFromInt(annual)))),
				),
			),
			Button(Type("submit"), Class("btn btn-primary btn-lg btn-block"), g.Text(p.T("ROICalculatorPage.calculateButton"))),
		),
	)
}

func roiInput(p *i18n.Printer, f roiField) g.Node {
	id := "roi-" + f.Name
	return Div(
		Div(
			Class("flex justify-between items-center gap-4"),
			Label(For(id), Class("font-medium"), g.Text(f.Label)),
			Div(
				Class("flex items-center gap-1"),
				g.If(f.Prefix != "", Span(Class("text-base-content/60"), g.Text(f.Prefix))),
				Input(
					ID(id),
					Name(f.Name),
					Type("number"),
					Class("input input-sm w-24 text-right"),
					Min(strconv.Itoa(f.Range.Min)),
					Max(strconv.Itoa(f.Range.Max)),
					Step(f.Step),
					Value(f.Value),
					g.Attr("aria-label", f.Label+" "+p.T("ROICalculatorPage.numberInputSuffix")),
					g.Attr("data-roi-field", f.Name),
				),
				g.If(f.Suffix != "", Span(Class("text-base-content/60 text-sm"), g.Text(f.Suffix))),
			),
		),
		Input(
			Type("range"),
			Class("range range-primary range-sm mt-3 w-full"),
			Min(strconv.Itoa(f.Range.Min)),
			Max(strconv.Itoa(f.Range.Max)),
			Step(f.Step),
			Value(f.Value),
			g.Attr("aria-label", f.Label),
			g.Attr("data-roi-slider", f.Name),
		),
		Div(
			Class("flex justify-between mt-1 text-xs text-base-content/50"),
			Span(g.Text(f.Prefix+strconv.Itoa(f.Range.Min))),
			Span(g.Text(f.Prefix+strconv.Itoa(f.Range.Max))),
		),
	)
}

type resultCard struct {
	Icon  string
	Color string
	Label string
	Value string
	Sub   string
}

func roiResultsView(p *i18n.Printer, s ROIState) g.Node {
	weekly, monthly, annual := s.Results.Rounded()

	cards := []resultCard{
		{"lucide--clock", "primary", p.T("ROICalculatorPage.weeklyHoursSaved"), p.Int(int(weekly)), p.T("ROICalculatorPage.weeklyHoursSavedSub")},
		{"lucide--dollar-sign", "success", p.T("ROICalculatorPage.monthlyCostSavings"), p.Money(decimal.NewFromInt(monthly)), p.T("ROICalculatorPage.monthlyCostSavingsSub")},
		{"lucide--trending-up", "secondary", p.T("ROICalculatorPage.annualCostSavings"), p.Money(decimal.NewFromInt(annual)), p.T("ROICalculatorPage.annualCostSavingsSub")},
		{"lucide--rocket", "accent", p.T("ROICalculatorPage.timeToROI"), p.T("ROICalculatorPage.timeToROIValue"), p.T("ROICalculatorPage.timeToROISub")},
	}

	return Div(
		ID("roi-results"),
		Div(
			Class("rounded-box bg-linear-to-br from-primary to-secondary text-primary-content p-8 text-center shadow-xl"),
			P(Class("text-sm font-semibold uppercase tracking-wide opacity-80"), g.Text(p.T("ROICalculatorPage.resultsBadge"))),
			P(Class("mt-2 font-extrabold text-5xl sm:text-6xl"), g.Text(p.Money(decimal.NewFromInt(annual)))),
			P(Class("mt-3 opacity-80"), g.Text(p.Plural("ROICalculatorPage.resultsSummary", s.Inputs.StoreCount, "Stores", p.Int(s.Inputs.StoreCount)))),
		),
		Div(
			Class("grid sm:grid-cols-2 gap-4 mt-8"),
			g.Group(g.Map(cards, func(c resultCard) g.Node {
				return Div(
					Class("card bg-base-100 border border-base-300"),
					Div(
						Class("card-body flex-row items-center gap-4"),
						IconBadge(c.Icon, c.Color),
						Div(
							P(Class("text-sm text-base-content/60"), g.Text(c.Label)),
							P(Class("font-extrabold text-2xl"), g.Text(c.Value)),
							P(Class("text-xs text-base-content/50"), g.Text(c.Sub)),
						),
					),
				)
			})),
		),
		P(Class("mt-4 text-xs text-center text-base-content/50"), g.Text(p.T("ROICalculatorPage.disclaimer"))),
		roiLeadForm(p, s),
		Div(
			Class("mt-8 text-center"),
			A(
				ID("roi-recalculate"),
				Href(p.Path("/roi-calculator")+"?"+s.Inputs.Values().Encode()),
				Class("btn btn-ghost"),
				Icon("lucide--rotate-ccw size-4", ""),
				g.Text(p.T("ROICalculatorPage.recalculate")),
			),
		),
	)
}

func roiLeadForm(p *i18n.Printer, s ROIState) g.Node {
	if s.Status == roi.StatusSuccess {
		return Div(
			ID("roi-lead-success"),
			Class("mt-10 alert alert-success"),
			g.Attr("role", "status"),
			Icon("lucide--check-circle-2 size-5", ""),
			Span(g.Text(p.T("ROICalculatorPage.emailSuccess"))),
		)
	}

	var errMsg string
	switch {
	case s.RateLimited:
		errMsg = p.T("ROICalculatorPage.rateLimited")
	case s.EmailInvalid:
		errMsg = p.T("ROICalculatorPage.emailInvalid")
	case s.Status == roi.StatusError:
		errMsg = p.T("ROICalculatorPage.emailError", "Email", s.SupportEmail)
	}

	loading := s.Status == roi.StatusLoading
	buttonText := p.T("ROICalculatorPage.emailButton")
	if loading {
		buttonText = p.T("ROICalculatorPage.emailSending")
	}

	hidden := s.Inputs.Values()
	fields := []string{roi.FieldStores, roi.FieldTeamMembers, roi.FieldHours, roi.FieldHourlyCost}

	return Div(
		Class("mt-10 card bg-base-200"),
		Div(
			Class("card-body"),
			H2(Class("font-bold text-xl"), g.Text(p.T("ROICalculatorPage.emailTitle"))),
			P(Class("text-base-content/70"), g.Text(p.Plural("ROICalculatorPage.emailSubtitle", s.Inputs.StoreCount, "Stores", p.Int(s.Inputs.StoreCount)))),
			Form(
				ID("roi-lead-form"),
				Method("post"),
				Action(p.Path("/roi-calculator/report")),
				Class("mt-4 flex flex-col sm:flex-row gap-3"),
				g.Attr("novalidate"),
				g.Group(g.Map(fields, func(name string) g.Node {
					return Input(Type("hidden"), Name(name), Value(hidden.Get(name)))
				})),
				Label(For("roi-email"), Class("sr-only"), g.Text(p.T("ROICalculatorPage.emailLabel"))),
				Input(
					ID("roi-email"),
					Name("email"),
					Type("email"),
					Required(),
					AutoComplete("email"),
					Class(fmt.Sprintf("input flex-1%s", errorClass(errMsg != "", " input-error"))),
					Placeholder(p.T("ROICalculatorPage.emailPlaceholder")),
					Value(s.Email),
					g.Attr("aria-label", p.T("ROICalculatorPage.emailAriaLabel")),
					g.If(errMsg != "", g.Attr("aria-invalid", "true")),
					g.If(errMsg != "", g.Attr("aria-describedby", "roi-lead-error")),
				),
				Button(
					Type("submit"),
					Class("btn btn-primary"),
					g.If(loading, Disabled()),
					g.Attr("data-loading-text", p.T("ROICalculatorPage.emailSending")),
					g.If(loading, Span(Class("loading loading-spinner loading-sm"))),
					g.Text(buttonText),
				),
			),
			g.If(errMsg != "", P(
				ID("roi-lead-error"),
				Class("mt-2 text-sm text-error"),
				g.Attr("role", "alert"),
				g.Text(errMsg),
			)),
		),
	)
}

func errorClass(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

func roiCTA(p *i18n.Printer) g.Node {
	return Section(
		Class("py-20 bg-neutral text-neutral-content"),
		Div(
			Class("max-w-3xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			H2(Class("font-extrabold text-3xl sm:text-4xl"), g.Text(p.T("ROICalculatorPage.ctaTitle"))),
			P(Class("mt-4 text-lg text-neutral-content/70"), g.Text(p.T("ROICalculatorPage.ctaSubtitle"))),
			Div(Class("mt-8"), PrimaryLink(p.Path("/demo"), p.T("ROICalculatorPage.ctaButton"))),
		),
	)
}
