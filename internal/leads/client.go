// Package leads delivers marketing-site leads (ROI report requests and demo
// requests) to a third-party form collector and notifies the sales inbox.
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/internal/roi"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

// Form identifies which site form produced a lead.
type Form string

const (
	FormROI  Form = "roi"
	FormDemo Form = "demo"
)

// ErrCollectorUnreachable wraps transport failures (DNS, refused, timeout).
var ErrCollectorUnreachable = errors.New("lead collector unreachable")

// CollectorError is a non-2xx answer from the collector.
type CollectorError struct {
	StatusCode int
	// Message is the collector's own "error" text, when it sent one.
	Message string
}

func (e *CollectorError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lead collector returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("lead collector returned %d", e.StatusCode)
}

// Client posts JSON lead payloads to collector endpoints. One POST per call.
type Client struct {
	http         *http.Client
	roiEndpoint  string
	demoEndpoint string
	log          *slog.Logger
}

// NewClient builds a client from the leads config. The transport is
// instrumented so outgoing calls join the request trace.
func NewClient(cfg *config.Config, log *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Leads.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		roiEndpoint:  cfg.Leads.ROIEndpoint,
		demoEndpoint: cfg.Leads.DemoEndpoint,
		log:          log.With(logger.Scope("leads.client")),
	}
}

// SendROILead implements roi.LeadSender.
func (c *Client) SendROILead(ctx context.Context, lead roi.LeadSubmission) error {
	return c.post(ctx, FormROI, c.roiEndpoint, lead.Payload())
}

// SendDemoRequest posts a validated demo request.
func (c *Client) SendDemoRequest(ctx context.Context, req DemoRequest) error {
	return c.post(ctx, FormDemo, c.demoEndpoint, req.Payload())
}

type collectorErrorBody struct {
	Error string `json:"error"`
}

func (c *Client) post(ctx context.Context, form Form, endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s lead: %w", form, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s lead request: %w", form, err)
	}
	submissionID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Submission-ID", submissionID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("lead collector request failed",
			slog.String("form", string(form)),
			slog.String("submission_id", submissionID),
			logger.Error(err))
		return fmt.Errorf("%w: %v", ErrCollectorUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Debug("lead accepted",
			slog.String("form", string(form)),
			slog.String("submission_id", submissionID),
			slog.Int("status", resp.StatusCode))
		return nil
	}

	cerr := &CollectorError{StatusCode: resp.StatusCode}
	var eb collectorErrorBody
	if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); readErr == nil {
		if json.Unmarshal(raw, &eb) == nil {
			cerr.Message = eb.Error
		}
	}

	c.log.Warn("lead rejected by collector",
		slog.String("form", string(form)),
		slog.String("submission_id", submissionID),
		slog.Int("status", resp.StatusCode),
		slog.String("message", cerr.Message))
	return cerr
}
