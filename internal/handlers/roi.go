package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/malamapl09/plexo-marketing/internal/components"
	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/internal/roi"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

// ROIForm shows the calculator form, pre-filled from the query string.
func (h *Handler) ROIForm(w http.ResponseWriter, r *http.Request) {
	s := roi.ResumeSession(h.leads, roi.ParseInputs(r.URL.Query()), roi.ViewForm)
	leads.ROIEstimates.WithLabelValues(string(roi.ViewForm)).Inc()
	h.renderROI(w, r, http.StatusOK, h.roiState(s))
}

// ROISubmit moves the posted inputs to the results view.
func (h *Handler) ROISubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Debug("malformed form", slog.String("path", r.URL.Path), logger.Error(err))
		h.BadRequest(w, r)
		return
	}

	s := roi.NewSession(h.leads)
	if err := s.Update(roi.ParseInputs(r.PostForm)); err != nil {
		h.log.Error("update calculator", logger.Error(err))
	}
	if _, err := s.Submit(); err != nil {
		h.log.Error("submit calculator", logger.Error(err))
	}

	leads.ROIEstimates.WithLabelValues(string(roi.ViewResults)).Inc()
	h.renderROI(w, r, http.StatusOK, h.roiState(s))
}

// ROIResults is the bookmarkable results view.
func (h *Handler) ROIResults(w http.ResponseWriter, r *http.Request) {
	s := roi.ResumeSession(h.leads, roi.ParseInputs(r.URL.Query()), roi.ViewResults)
	leads.ROIEstimates.WithLabelValues(string(roi.ViewResults)).Inc()
	h.renderROI(w, r, http.StatusOK, h.roiState(s))
}

// ROIReport submits the lead form of the results view. The inputs travel
// as hidden fields so the results stay the same across the round trip.
func (h *Handler) ROIReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Debug("malformed form", slog.String("path", r.URL.Path), logger.Error(err))
		h.BadRequest(w, r)
		return
	}

	s := roi.ResumeSession(h.leads, roi.ParseInputs(r.PostForm), roi.ViewResults)
	email := strings.TrimSpace(r.PostForm.Get(leads.FieldEmail))

	state := h.roiState(s)
	state.Email = email

	if rule := leads.ValidateEmail(email); rule != "" {
		leads.LeadsSubmitted.WithLabelValues(string(leads.FormROI), leads.OutcomeInvalid).Inc()
		state.EmailInvalid = true
		h.renderROI(w, r, http.StatusUnprocessableEntity, state)
		return
	}

	err := s.SubmitLead(r.Context(), email)
	state.Status = s.Status()

	status := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, roi.ErrEmailRequired):
		state.EmailInvalid = true
		status = http.StatusUnprocessableEntity
	default:
		h.log.Warn("roi report not delivered",
			slog.Int("stores", s.Inputs().StoreCount),
			logger.Error(err))
		status = http.StatusBadGateway
	}

	h.renderROI(w, r, status, state)
}

// roiThrottled answers a rate-limited report request on the results view.
func (h *Handler) roiThrottled(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	s := roi.ResumeSession(h.leads, roi.ParseInputs(r.PostForm), roi.ViewResults)
	state := h.roiState(s)
	state.Email = strings.TrimSpace(r.PostForm.Get(leads.FieldEmail))
	state.RateLimited = true
	h.renderROI(w, r, http.StatusTooManyRequests, state)
}

func (h *Handler) roiState(s *roi.Session) components.ROIState {
	return components.ROIState{
		Inputs:       s.Inputs(),
		Results:      s.Results(),
		View:         s.View(),
		Status:       s.Status(),
		SupportEmail: h.cfg.Site.SupportEmail,
	}
}

func (h *Handler) renderROI(w http.ResponseWriter, r *http.Request, status int, state components.ROIState) {
	p := h.printer(r)
	h.page(w, r, status, components.PageConfig{
		Title:       p.T("ROICalculatorPage.metaTitle"),
		Description: p.T("ROICalculatorPage.metaDescription"),
		// Only the form view is canonical; result URLs carry the inputs.
		Alternates: h.seo.Alternates("/roi-calculator", p.Locale),
		Scripts:    []string{"/static/js/roi.js", formsScript},
	}, components.ROICalculatorPage(p, state))
}
