package leads

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/malamapl09/plexo-marketing/internal/roi"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
	"github.com/malamapl09/plexo-marketing/pkg/tracing"
)

// Sender posts leads to the collector. *Client is the production implementation.
type Sender interface {
	SendROILead(ctx context.Context, lead roi.LeadSubmission) error
	SendDemoRequest(ctx context.Context, req DemoRequest) error
}

// ErrInvalidDemoRequest is returned with field errors attached via *ValidationError.
var ErrInvalidDemoRequest = errors.New("invalid demo request")

// ValidationError carries per-field failures for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrInvalidDemoRequest.Error() }

func (e *ValidationError) Unwrap() error { return ErrInvalidDemoRequest }

// Service is the lead entry point used by handlers: deliver, record, notify.
type Service struct {
	sender     Sender
	dispatcher *Dispatcher
	log        *slog.Logger
}

func NewService(sender Sender, dispatcher *Dispatcher, log *slog.Logger) *Service {
	return &Service{
		sender:     sender,
		dispatcher: dispatcher,
		log:        log.With(logger.Scope("leads")),
	}
}

// SendROILead implements roi.LeadSender.
func (s *Service) SendROILead(ctx context.Context, lead roi.LeadSubmission) error {
	ctx, span := tracing.Start(ctx, "leads.submit",
		attribute.String("plexo.lead.form", string(FormROI)),
		attribute.Int("plexo.roi.stores", lead.Inputs.StoreCount),
	)
	defer span.End()

	err := s.deliver(ctx, FormROI, func(ctx context.Context) error {
		return s.sender.SendROILead(ctx, lead)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	p := lead.Payload()
	s.dispatcher.Enqueue(Notification{
		Subject:  "New ROI report request: " + p.Email,
		Template: "roi_lead",
		ReplyTo:  p.Email,
		Text: "ROI report requested by " + p.Email +
			" for " + strconv.Itoa(p.Stores) + " stores. Estimated annual savings: $" +
			strconv.FormatInt(p.AnnualSavings, 10),
		Data: TemplateContext{
			"email":               p.Email,
			"stores":              p.Stores,
			"teamMembersPerStore": p.TeamMembersPerStore,
			"hoursPerStore":       p.HoursPerStore,
			"hourlyCost":          lead.Inputs.HourlyLaborCost.String(),
			"weeklyHoursSaved":    p.WeeklyHoursSaved,
			"monthlySavings":      p.MonthlySavings,
			"annualSavings":       p.AnnualSavings,
		},
	})
	return nil
}

// SubmitDemo validates and delivers a demo request. Validation failures
// return a *ValidationError and never reach the collector.
func (s *Service) SubmitDemo(ctx context.Context, req DemoRequest) error {
	req = req.Normalize()
	if fields := req.Validate(); fields != nil {
		LeadsSubmitted.WithLabelValues(string(FormDemo), OutcomeInvalid).Inc()
		return &ValidationError{Fields: fields}
	}

	ctx, span := tracing.Start(ctx, "leads.submit",
		attribute.String("plexo.lead.form", string(FormDemo)),
	)
	defer span.End()

	err := s.deliver(ctx, FormDemo, func(ctx context.Context) error {
		return s.sender.SendDemoRequest(ctx, req)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	p := req.Payload()
	s.dispatcher.Enqueue(Notification{
		Subject:  "Demo request from " + p.Company,
		Template: "demo_request",
		ReplyTo:  p.Email,
		Text:     p.FullName + " (" + p.Email + ") from " + p.Company + " requested a demo. Stores: " + p.StoreCount,
		Data: TemplateContext{
			"fullName":   p.FullName,
			"email":      p.Email,
			"company":    p.Company,
			"storeCount": p.StoreCount,
			"message":    req.Message,
		},
	})
	return nil
}

func (s *Service) deliver(ctx context.Context, form Form, send func(context.Context) error) error {
	start := time.Now()
	err := send(ctx)
	LeadSubmitDuration.WithLabelValues(string(form)).Observe(time.Since(start).Seconds())

	LeadsSubmitted.WithLabelValues(string(form), outcome(err)).Inc()
	if err != nil {
		s.log.Warn("lead submission failed",
			slog.String("form", string(form)),
			logger.Error(err))
		return err
	}
	s.log.Info("lead submitted", slog.String("form", string(form)))
	return nil
}

func outcome(err error) string {
	var cerr *CollectorError
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.As(err, &cerr):
		return OutcomeRejected
	default:
		return OutcomeUnreachable
	}
}
