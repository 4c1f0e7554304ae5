package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/malamapl09/plexo-marketing/internal/components"
	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

// formsScript disables submit buttons while a form posts.
const formsScript = "/static/js/forms.js"

func (h *Handler) DemoForm(w http.ResponseWriter, r *http.Request) {
	h.renderDemo(w, r, http.StatusOK, components.DemoState{})
}

func (h *Handler) DemoSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Debug("malformed form", slog.String("path", r.URL.Path), logger.Error(err))
		h.BadRequest(w, r)
		return
	}

	req := demoRequestFromForm(r)
	err := h.leads.SubmitDemo(r.Context(), req)
	if err == nil {
		h.renderDemo(w, r, http.StatusOK, components.DemoState{Form: req.Normalize(), Success: true})
		return
	}

	state := components.DemoState{Form: req}
	status := http.StatusBadGateway

	var verr *leads.ValidationError
	var cerr *leads.CollectorError
	switch {
	case errors.As(err, &verr):
		state.Fields = verr.Fields
		status = http.StatusUnprocessableEntity
	case errors.As(err, &cerr):
		state.Error = demoCollectorMessage(h.printer(r), cerr, h.cfg.Site.SupportEmail)
	default:
		state.Error = h.printer(r).T("DemoPage.errConnection")
	}

	h.renderDemo(w, r, status, state)
}

// demoCollectorMessage prefers the collector's own explanation.
func demoCollectorMessage(p *i18n.Printer, cerr *leads.CollectorError, supportEmail string) string {
	if cerr.Message != "" {
		return cerr.Message
	}
	return p.T("DemoPage.errGeneric", "Email", supportEmail)
}

func (h *Handler) demoThrottled(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	h.renderDemo(w, r, http.StatusTooManyRequests, components.DemoState{
		Form:  demoRequestFromForm(r),
		Error: h.printer(r).T("DemoPage.rateLimited"),
	})
}

func demoRequestFromForm(r *http.Request) leads.DemoRequest {
	return leads.DemoRequest{
		FullName:   r.PostForm.Get(leads.FieldFullName),
		Email:      r.PostForm.Get(leads.FieldEmail),
		Company:    r.PostForm.Get(leads.FieldCompany),
		StoreCount: r.PostForm.Get(leads.FieldStoreCount),
		Message:    r.PostForm.Get(leads.FieldMessage),
	}
}

func (h *Handler) renderDemo(w http.ResponseWriter, r *http.Request, status int, state components.DemoState) {
	p := h.printer(r)
	h.page(w, r, status, components.PageConfig{
		Title:       p.T("DemoPage.metaTitle"),
		Description: p.T("DemoPage.metaDescription"),
		Scripts:     []string{formsScript},
	}, components.DemoPage(p, state))
}
