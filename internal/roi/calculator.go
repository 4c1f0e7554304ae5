// Package roi estimates the labor savings a retail chain gets from moving
// manual store operations onto the platform.
//
// The estimate is a pure function of four inputs. All arithmetic is done on
// exact decimals so results never carry binary floating-point drift.
package roi

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed product assumptions. Not configurable.
var (
	// TimeSavingsFraction is the share of manual hours the platform eliminates.
	TimeSavingsFraction = decimal.RequireFromString("0.6")
	// WeeksPerMonth is the average number of weeks in a month.
	WeeksPerMonth = decimal.RequireFromString("4.33")
	// MonthsPerYear converts monthly savings to annual savings.
	MonthsPerYear = decimal.NewFromInt(12)
)

// Form field names, shared by the HTML form, the query string and the JSON payload.
const (
	FieldStores      = "stores"
	FieldTeamMembers = "teamMembersPerStore"
	FieldHours       = "hoursPerStore"
	FieldHourlyCost  = "hourlyCost"
)

// Range is an inclusive integer domain for one input.
type Range struct {
	Min int
	Max int
}

// Clamp forces v into the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

var (
	StoreCountRange  = Range{Min: 1, Max: 500}
	TeamMembersRange = Range{Min: 1, Max: 100}
	HoursRange       = Range{Min: 1, Max: 40}
	HourlyCostRange  = Range{Min: 10, Max: 100}
)

// costExponentLimit bounds the decimal exponent of an hourly cost. Comparing
// decimals rescales them to a common exponent, so only values inside
// [-limit, limit] are ever compared.
const costExponentLimit = 6

// Inputs describes an operation's scale and labor cost.
type Inputs struct {
	StoreCount          int
	TeamMembersPerStore int
	// HoursPerStore is weekly manual hours per store.
	HoursPerStore   int
	HourlyLaborCost decimal.Decimal
}

// DefaultInputs pre-populates the calculator form.
func DefaultInputs() Inputs {
	return Inputs{
		StoreCount:          25,
		TeamMembersPerStore: 15,
		HoursPerStore:       10,
		HourlyLaborCost:     decimal.NewFromInt(25),
	}
}

// Clamp returns a copy with every field forced into its domain.
func (in Inputs) Clamp() Inputs {
	out := Inputs{
		StoreCount:          StoreCountRange.Clamp(in.StoreCount),
		TeamMembersPerStore: TeamMembersRange.Clamp(in.TeamMembersPerStore),
		HoursPerStore:       HoursRange.Clamp(in.HoursPerStore),
		HourlyLaborCost:     clampCost(in.HourlyLaborCost),
	}
	return out
}

// clampCost forces d into HourlyCostRange. Values too precise to compare
// cheaply fall back to the default cost.
func clampCost(d decimal.Decimal) decimal.Decimal {
	lo := decimal.NewFromInt(int64(HourlyCostRange.Min))
	hi := decimal.NewFromInt(int64(HourlyCostRange.Max))

	switch exp := d.Exponent(); {
	case exp > costExponentLimit:
		// |d| is at least 10^7 unless it is zero.
		if d.Sign() > 0 {
			return hi
		}
		return lo
	case exp < -costExponentLimit:
		return DefaultInputs().HourlyLaborCost
	}

	switch {
	case d.LessThan(lo):
		return lo
	case d.GreaterThan(hi):
		return hi
	}
	return d
}

// Values encodes the inputs as form values.
func (in Inputs) Values() url.Values {
	v := url.Values{}
	v.Set(FieldStores, strconv.Itoa(in.StoreCount))
	v.Set(FieldTeamMembers, strconv.Itoa(in.TeamMembersPerStore))
	v.Set(FieldHours, strconv.Itoa(in.HoursPerStore))
	v.Set(FieldHourlyCost, in.HourlyLaborCost.String())
	return v
}

// ParseInputs reads inputs from form or query values. Missing or unparsable
// fields keep their default; everything is clamped, including an hourly cost
// written with an extreme exponent.
func ParseInputs(values url.Values) Inputs {
	in := DefaultInputs()

	if n, ok := parseInt(values.Get(FieldStores)); ok {
		in.StoreCount = n
	}
	if n, ok := parseInt(values.Get(FieldTeamMembers)); ok {
		in.TeamMembersPerStore = n
	}
	if n, ok := parseInt(values.Get(FieldHours)); ok {
		in.HoursPerStore = n
	}
	if raw := strings.TrimSpace(values.Get(FieldHourlyCost)); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			in.HourlyLaborCost = d
		}
	}

	return in.Clamp()
}

func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// Out-of-range floats are clamped later; keep the conversion itself bounded.
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return int(math.Round(f)), true
}

// Results are the derived savings metrics. Never stored; always recomputed.
type Results struct {
	WeeklyHoursSaved decimal.Decimal
	MonthlySavings   decimal.Decimal
	AnnualSavings    decimal.Decimal
}

// Calculate maps clamped inputs to results. TeamMembersPerStore does not
// participate in the formula.
func Calculate(in Inputs) Results {
	weekly := decimal.NewFromInt(int64(in.StoreCount) * int64(in.HoursPerStore)).Mul(TimeSavingsFraction)
	monthly := weekly.Mul(in.HourlyLaborCost).Mul(WeeksPerMonth)
	annual := monthly.Mul(MonthsPerYear)

	return Results{
		WeeklyHoursSaved: weekly,
		MonthlySavings:   monthly,
		AnnualSavings:    annual,
	}
}

// Rounded returns the results rounded half-up to whole units.
func (r Results) Rounded() (weekly, monthly, annual int64) {
	return roundInt(r.WeeklyHoursSaved), roundInt(r.MonthlySavings), roundInt(r.AnnualSavings)
}

func roundInt(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
