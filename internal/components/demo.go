package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/leads"
)

// DemoState is the demo page after zero or one submission.
type DemoState struct {
	Form leads.DemoRequest
	// Fields maps a form field to the rule it failed.
	Fields map[string]string
	// Error is an already translated banner message.
	Error   string
	Success bool
}

func DemoPage(p *i18n.Printer, s DemoState) g.Node {
	trust := []struct{ Icon, Key string }{
		{"lucide--shield-check", "DemoPage.trust1"},
		{"lucide--clock", "DemoPage.trust2"},
		{"lucide--handshake", "DemoPage.trust3"},
	}

	var body g.Node
	if s.Success {
		body = demoSuccess(p, s.Form)
	} else {
		body = demoForm(p, s)
	}

	return Section(
		Class("pt-32 pb-20 sm:pt-40"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8 grid lg:grid-cols-2 gap-12 lg:gap-20"),
			Div(
				Pill(p.T("DemoPage.badge")),
				H1(Class("mt-4 font-extrabold text-4xl sm:text-5xl tracking-tight"), g.Text(p.T("DemoPage.title"))),
				P(Class("mt-6 text-lg text-base-content/70"), g.Text(p.T("DemoPage.subtitle"))),
				Ul(
					Class("mt-10 space-y-4"),
					g.Group(g.Map(trust, func(t struct{ Icon, Key string }) g.Node {
						return Li(
							Class("flex items-center gap-3 font-medium"),
							Icon(t.Icon+" size-5 text-primary", ""),
							g.Text(p.T(t.Key)),
						)
					})),
				),
			),
			Div(body),
		),
	)
}

func demoSuccess(p *i18n.Printer, req leads.DemoRequest) g.Node {
	return Div(
		ID("demo-success"),
		Class("card bg-base-100 border border-success/30 shadow-xl"),
		g.Attr("role", "status"),
		Div(
			Class("card-body items-center text-center"),
			IconBadge("lucide--check-circle-2", "success"),
			H2(Class("mt-4 font-bold text-2xl"), g.Text(p.T("DemoPage.successTitle"))),
			P(Class("text-base-content/70"), g.Text(p.T("DemoPage.successBody", "Name", req.FullName))),
			P(Class("text-sm text-base-content/60"), g.Text(p.T("DemoPage.successEmail", "Email", req.Email))),
			A(Href(p.Path("/")), Class("btn btn-ghost mt-4"), g.Text(p.T("DemoPage.backHome"))),
		),
	)
}

func demoForm(p *i18n.Printer, s DemoState) g.Node {
	return Div(
		Class("card bg-base-100 border border-base-300 shadow-xl"),
		Div(
			Class("card-body"),
			H2(Class("font-bold text-xl"), g.Text(p.T("DemoPage.formTitle"))),
			P(Class("text-sm text-base-content/60"), g.Text(p.T("DemoPage.requiredNote"))),
			g.If(s.Error != "", Div(
				ID("demo-error"),
				Class("alert alert-error mt-4"),
				g.Attr("role", "alert"),
				Icon("lucide--alert-circle size-5", ""),
				Span(g.Text(s.Error)),
			)),
			Form(
				ID("demo-form"),
				Method("post"),
				Action(p.Path("/demo")),
				Class("mt-4 space-y-4"),
				g.Attr("novalidate"),
				g.Attr("aria-label", p.T("DemoPage.formAriaLabel")),
				demoTextField(p, s, leads.FieldFullName, "text", "name", s.Form.FullName, "DemoPage.fullNameLabel", "DemoPage.fullNamePlaceholder", true),
				demoTextField(p, s, leads.FieldEmail, "email", "email", s.Form.Email, "DemoPage.emailLabel", "DemoPage.emailPlaceholder", true),
				demoTextField(p, s, leads.FieldCompany, "text", "organization", s.Form.Company, "DemoPage.companyLabel", "DemoPage.companyPlaceholder", true),
				demoStoreCount(p, s),
				demoField(p, s, leads.FieldMessage, "DemoPage.messageLabel", false,
					Textarea(
						ID("demo-"+leads.FieldMessage),
						Name(leads.FieldMessage),
						Rows("4"),
						Class("textarea w-full"+errorClass(s.Fields[leads.FieldMessage] != "", " textarea-error")),
						Placeholder(p.T("DemoPage.messagePlaceholder")),
						fieldAria(s, leads.FieldMessage),
						g.Text(s.Form.Message),
					),
				),
				Button(
					Type("submit"),
					Class("btn btn-primary btn-lg btn-block"),
					g.Attr("data-loading-text", p.T("DemoPage.submitting")),
					g.Text(p.T("DemoPage.submit")),
				),
			),
		),
	)
}

func demoTextField(p *i18n.Printer, s DemoState, name, typ, autocomplete, value, labelID, placeholderID string, required bool) g.Node {
	return demoField(p, s, name, labelID, required,
		Input(
			ID("demo-"+name),
			Name(name),
			Type(typ),
			AutoComplete(autocomplete),
			Class("input w-full"+errorClass(s.Fields[name] != "", " input-error")),
			Placeholder(p.T(placeholderID)),
			Value(value),
			g.If(required, Required()),
			fieldAria(s, name),
		),
	)
}

func demoStoreCount(p *i18n.Printer, s DemoState) g.Node {
	return demoField(p, s, leads.FieldStoreCount, "DemoPage.storeCountLabel", false,
		Select(
			ID("demo-"+leads.FieldStoreCount),
			Name(leads.FieldStoreCount),
			Class("select w-full"+errorClass(s.Fields[leads.FieldStoreCount] != "", " select-error")),
			fieldAria(s, leads.FieldStoreCount),
			Option(Value(""), g.Text(p.T("DemoPage.storeCountPlaceholder"))),
			g.Group(g.Map(leads.StoreCountOptions, func(opt string) g.Node {
				return Option(
					Value(opt),
					g.If(s.Form.StoreCount == opt, Selected()),
					g.Text(p.T(storeCountLabelID(opt))),
				)
			})),
		),
	)
}

func storeCountLabelID(opt string) string {
	for i, o := range leads.StoreCountOptions {
		if o == opt {
			return fmt.Sprintf("DemoPage.storeCount%d", i+1)
		}
	}
	return opt
}

func demoField(p *i18n.Printer, s DemoState, name, labelID string, required bool, control g.Node) g.Node {
	rule := s.Fields[name]
	return Div(
		Label(
			For("demo-"+name),
			Class("block text-sm font-medium mb-1"),
			g.Text(p.T(labelID)),
			g.If(required, Span(Class("text-error"), g.Text(" *"))),
		),
		control,
		g.If(rule != "", P(
			ID("demo-"+name+"-error"),
			Class("mt-1 text-sm text-error"),
			g.Text(p.T(DemoFieldErrorID(name, rule))),
		)),
	)
}

func fieldAria(s DemoState, name string) g.Node {
	if s.Fields[name] == "" {
		return nil
	}
	return g.Group([]g.Node{
		g.Attr("aria-invalid", "true"),
		g.Attr("aria-describedby", "demo-"+name+"-error"),
	})
}

// DemoFieldErrorID maps a failed validation rule to its message ID.
func DemoFieldErrorID(field, rule string) string {
	switch field {
	case leads.FieldFullName:
		return "DemoPage.errFullNameRequired"
	case leads.FieldEmail:
		if rule == "required" {
			return "DemoPage.errEmailRequired"
		}
		return "DemoPage.errEmailInvalid"
	case leads.FieldCompany:
		return "DemoPage.errCompanyRequired"
	case leads.FieldStoreCount:
		return "DemoPage.errStoreCountInvalid"
	case leads.FieldMessage:
		return "DemoPage.errMessageTooLong"
	}
	return "DemoPage.errConnection"
}
