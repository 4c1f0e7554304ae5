package leads

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes used as the "outcome" label.
const (
	OutcomeAccepted    = "accepted"
	OutcomeRejected    = "rejected"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
	OutcomeThrottled   = "throttled"
)

// Notification outcomes.
const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationDropped = "dropped"
)

var (
	LeadsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plexo_leads_submitted_total",
		Help: "Lead submissions by form and outcome",
	}, []string{"form", "outcome"})

	LeadSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plexo_lead_submit_duration_seconds",
		Help:    "Time spent posting a lead to the collector",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"form"})

	LeadNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plexo_lead_notifications_total",
		Help: "Sales notifications about accepted leads, by outcome",
	}, []string{"outcome"})

	// ROIEstimates counts calculator renders by view (form, results, api).
	ROIEstimates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plexo_roi_estimates_total",
		Help: "ROI calculator estimates served, by view",
	}, []string{"view"})
)
