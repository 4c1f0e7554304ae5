package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/internal/roi"
	"github.com/malamapl09/plexo-marketing/pkg/apperror"
)

const maxAPIBody = 64 << 10

// EstimateRequest is the JSON body of POST /api/roi/estimate. Missing
// fields take the calculator defaults.
type EstimateRequest struct {
	Stores              *int             `json:"stores"`
	TeamMembersPerStore *int             `json:"teamMembersPerStore"`
	HoursPerStore       *int             `json:"hoursPerStore"`
	HourlyCost          *decimal.Decimal `json:"hourlyCost"`
}

func (req EstimateRequest) inputs() roi.Inputs {
	in := roi.DefaultInputs()
	if req.Stores != nil {
		in.StoreCount = *req.Stores
	}
	if req.TeamMembersPerStore != nil {
		in.TeamMembersPerStore = *req.TeamMembersPerStore
	}
	if req.HoursPerStore != nil {
		in.HoursPerStore = *req.HoursPerStore
	}
	if req.HourlyCost != nil {
		in.HourlyLaborCost = *req.HourlyCost
	}
	return in.Clamp()
}

type EstimateInputs struct {
	Stores              int             `json:"stores"`
	TeamMembersPerStore int             `json:"teamMembersPerStore"`
	HoursPerStore       int             `json:"hoursPerStore"`
	HourlyCost          decimal.Decimal `json:"hourlyCost"`
}

type EstimateResults struct {
	WeeklyHoursSaved int64 `json:"weeklyHoursSaved"`
	MonthlySavings   int64 `json:"monthlySavings"`
	AnnualSavings    int64 `json:"annualSavings"`
	// Exact values are decimal strings, unrounded.
	Exact struct {
		WeeklyHoursSaved decimal.Decimal `json:"weeklyHoursSaved"`
		MonthlySavings   decimal.Decimal `json:"monthlySavings"`
		AnnualSavings    decimal.Decimal `json:"annualSavings"`
	} `json:"exact"`
}

type EstimateResponse struct {
	Inputs  EstimateInputs  `json:"inputs"`
	Results EstimateResults `json:"results"`
}

func (h *Handler) EstimateAPI(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := decodeJSON(r, &req); err != nil {
		apperror.WriteJSON(w, r, h.log, err)
		return
	}

	in := req.inputs()
	res := roi.Calculate(in)
	weekly, monthly, annual := res.Rounded()

	resp := EstimateResponse{
		Inputs: EstimateInputs{
			Stores:              in.StoreCount,
			TeamMembersPerStore: in.TeamMembersPerStore,
			HoursPerStore:       in.HoursPerStore,
			HourlyCost:          in.HourlyLaborCost,
		},
		Results: EstimateResults{
			WeeklyHoursSaved: weekly,
			MonthlySavings:   monthly,
			AnnualSavings:    annual,
		},
	}
	resp.Results.Exact.WeeklyHoursSaved = res.WeeklyHoursSaved
	resp.Results.Exact.MonthlySavings = res.MonthlySavings
	resp.Results.Exact.AnnualSavings = res.AnnualSavings

	leads.ROIEstimates.WithLabelValues("api").Inc()
	apperror.JSON(w, http.StatusOK, resp)
}

// ROILeadRequest is the JSON body of POST /api/leads/roi.
type ROILeadRequest struct {
	EstimateRequest
	Email string `json:"email"`
}

// LeadAccepted is returned for every lead the collector took.
type LeadAccepted struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *Handler) ROILeadAPI(w http.ResponseWriter, r *http.Request) {
	var req ROILeadRequest
	if err := decodeJSON(r, &req); err != nil {
		apperror.WriteJSON(w, r, h.log, err)
		return
	}

	if rule := leads.ValidateEmail(req.Email); rule != "" {
		leads.LeadsSubmitted.WithLabelValues(string(leads.FormROI), leads.OutcomeInvalid).Inc()
		apperror.WriteJSON(w, r, h.log, apperror.NewValidation(map[string]string{leads.FieldEmail: rule}))
		return
	}

	s := roi.ResumeSession(h.leads, req.inputs(), roi.ViewResults)
	if err := s.SubmitLead(r.Context(), req.Email); err != nil {
		apperror.WriteJSON(w, r, h.log, collectorHTTPError(err))
		return
	}

	h.accepted(w, leads.FormROI)
}

func (h *Handler) DemoLeadAPI(w http.ResponseWriter, r *http.Request) {
	var req leads.DemoRequest
	if err := decodeJSON(r, &req); err != nil {
		apperror.WriteJSON(w, r, h.log, err)
		return
	}

	err := h.leads.SubmitDemo(r.Context(), req)
	var verr *leads.ValidationError
	switch {
	case err == nil:
		h.accepted(w, leads.FormDemo)
	case errors.As(err, &verr):
		apperror.WriteJSON(w, r, h.log, apperror.NewValidation(verr.Fields))
	default:
		apperror.WriteJSON(w, r, h.log, collectorHTTPError(err))
	}
}

func (h *Handler) accepted(w http.ResponseWriter, form leads.Form) {
	id := uuid.NewString()
	h.log.Info("lead accepted", slog.String("form", string(form)), slog.String("id", id))
	apperror.JSON(w, http.StatusAccepted, LeadAccepted{ID: id, Status: "accepted"})
}

// APINotFound keeps unknown /api paths in JSON.
func (h *Handler) APINotFound(w http.ResponseWriter, r *http.Request) {
	apperror.WriteJSON(w, r, h.log, apperror.ErrNotFound)
}

// collectorHTTPError maps a failed delivery to 502, keeping the collector's
// own message when it gave one.
func collectorHTTPError(err error) *apperror.Error {
	var cerr *leads.CollectorError
	if errors.As(err, &cerr) && cerr.Message != "" {
		return apperror.ErrBadGateway.WithMessage(cerr.Message).WithInternal(err)
	}
	return apperror.ErrBadGateway.WithInternal(err)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxAPIBody))
	if err := dec.Decode(v); err != nil {
		return apperror.NewBadRequest("Request body must be valid JSON").WithInternal(err)
	}
	return nil
}
