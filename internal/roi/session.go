package roi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// View is the calculator screen currently shown.
type View string

const (
	ViewForm    View = "form"
	ViewResults View = "results"
)

// ParseView maps a raw value to a View, defaulting to the form.
func ParseView(s string) View {
	if View(s) == ViewResults {
		return ViewResults
	}
	return ViewForm
}

// SubmissionStatus tracks the lead-capture request inside the results view.
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusLoading SubmissionStatus = "loading"
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

var (
	ErrInvalidTransition  = errors.New("invalid calculator transition")
	ErrSubmissionInFlight = errors.New("lead submission already in progress")
	ErrAlreadySubmitted   = errors.New("lead already submitted")
	ErrEmailRequired      = errors.New("email is required")
)

// Session is one visitor's calculator: inputs, the active view and the lead
// submission sub-state. Results are derived from inputs on every read.
type Session struct {
	sender LeadSender

	mu      sync.Mutex
	inputs  Inputs
	view    View
	status  SubmissionStatus
	lastErr error
}

// NewSession starts on the form view with default inputs.
func NewSession(sender LeadSender) *Session {
	return &Session{
		sender: sender,
		inputs: DefaultInputs(),
		view:   ViewForm,
		status: StatusIdle,
	}
}

// ResumeSession rebuilds a session that was carried across requests.
// The submission status always starts idle.
func ResumeSession(sender LeadSender, in Inputs, view View) *Session {
	s := NewSession(sender)
	s.inputs = in.Clamp()
	s.view = ParseView(string(view))
	return s
}

func (s *Session) Inputs() Inputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs
}

func (s *Session) Results() Results {
	return Calculate(s.Inputs())
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) Status() SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err is the error from the last failed submission, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Update replaces the inputs. Only the form view accepts edits.
func (s *Session) Update(in Inputs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return fmt.Errorf("%w: update from %s", ErrInvalidTransition, s.view)
	}
	s.inputs = in.Clamp()
	return nil
}

// Submit moves from the form to the results view and returns fresh results.
func (s *Session) Submit() (Results, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return Results{}, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, s.view)
	}
	s.view = ViewResults
	return Calculate(s.inputs), nil
}

// Recalculate returns to the form. Inputs are kept, the submission status is reset.
func (s *Session) Recalculate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewResults {
		return fmt.Errorf("%w: recalculate from %s", ErrInvalidTransition, s.view)
	}
	s.view = ViewForm
	s.status = StatusIdle
	s.lastErr = nil
	return nil
}

// SubmitLead sends one lead for the current inputs and results.
// Allowed from idle or error; rejected while loading and after success.
// The lock is not held while the sender runs.
func (s *Session) SubmitLead(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	s.mu.Lock()
	switch {
	case s.view != ViewResults:
		s.mu.Unlock()
		return fmt.Errorf("%w: submit lead from %s", ErrInvalidTransition, s.view)
	case s.status == StatusLoading:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	case s.status == StatusSuccess:
		s.mu.Unlock()
		return ErrAlreadySubmitted
	case email == "":
		s.mu.Unlock()
		return ErrEmailRequired
	}
	s.status = StatusLoading
	s.lastErr = nil
	lead := LeadSubmission{
		Email:   email,
		Inputs:  s.inputs,
		Results: Calculate(s.inputs),
	}
	s.mu.Unlock()

	err := s.sender.SendROILead(ctx, lead)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		s.lastErr = err
		return err
	}
	s.status = StatusSuccess
	return nil
}
