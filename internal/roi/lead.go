package roi

import "context"

// LeadSubmission bundles the visitor's email with the inputs and results
// they were looking at when they asked for the report.
type LeadSubmission struct {
	Email   string
	Inputs  Inputs
	Results Results
}

// LeadPayload is the JSON body delivered to the lead collector.
type LeadPayload struct {
	Email               string  `json:"email"`
	Stores              int     `json:"stores"`
	TeamMembersPerStore int     `json:"teamMembersPerStore"`
	HoursPerStore       int     `json:"hoursPerStore"`
	HourlyCost          float64 `json:"hourlyCost"`
	WeeklyHoursSaved    int64   `json:"weeklyHoursSaved"`
	MonthlySavings      int64   `json:"monthlySavings"`
	AnnualSavings       int64   `json:"annualSavings"`
}

// Payload builds the wire body. Results are rounded to whole numbers.
func (l LeadSubmission) Payload() LeadPayload {
	weekly, monthly, annual := l.Results.Rounded()
	return LeadPayload{
		Email:               l.Email,
		Stores:              l.Inputs.StoreCount,
		TeamMembersPerStore: l.Inputs.TeamMembersPerStore,
		HoursPerStore:       l.Inputs.HoursPerStore,
		HourlyCost:          l.Inputs.HourlyLaborCost.InexactFloat64(),
		WeeklyHoursSaved:    weekly,
		MonthlySavings:      monthly,
		AnnualSavings:       annual,
	}
}

// LeadSender delivers a lead to an external collector. Any returned error
// means the lead was not accepted.
type LeadSender interface {
	SendROILead(ctx context.Context, lead LeadSubmission) error
}

// LeadSenderFunc adapts a function to LeadSender.
type LeadSenderFunc func(ctx context.Context, lead LeadSubmission) error

func (f LeadSenderFunc) SendROILead(ctx context.Context, lead LeadSubmission) error {
	return f(ctx, lead)
}
