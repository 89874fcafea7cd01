// Package roi estimates the yearly time and cost an operations team saves by
// halving its mean time to resolve routine incidents.
package roi

// MTTRReduction is the share of resolution time governed execution removes.
const MTTRReduction = 0.5

const monthsPerYear = 12

// Savings is the projected yearly outcome for one set of inputs.
type Savings struct {
	TimeSavedHoursPerYear float64 `json:"time_saved_hours_per_year"`
	CostSavedPerYear      float64 `json:"cost_saved_per_year"`
}

// ComputeSavings projects yearly hours and dollars saved. It does not clamp or
// validate; callers keep the inputs inside the ranges they expose.
func ComputeSavings(incidentsPerMonth, mttrHours, costPerHour float64) Savings {
	timeSaved := mttrHours * MTTRReduction * incidentsPerMonth * monthsPerYear
	return Savings{
		TimeSavedHoursPerYear: timeSaved,
		CostSavedPerYear:      timeSaved * costPerHour,
	}
}

// Estimate is what the calculator renders: the normalized inputs, the raw
// savings and their display strings.
type Estimate struct {
	Inputs           Inputs  `json:"inputs"`
	Savings          Savings `json:"savings"`
	TimeSavedDisplay string  `json:"time_saved_display"`
	CostSavedDisplay string  `json:"cost_saved_display"`
}

// NewEstimate normalizes in and computes its savings.
func NewEstimate(in Inputs) Estimate {
	in = in.Normalize()
	s := ComputeSavings(in.IncidentsPerMonth, in.MTTRHours, in.CostPerHour)
	return Estimate{
		Inputs:           in,
		Savings:          s,
		TimeSavedDisplay: FormatAbbreviatedNumber(s.TimeSavedHoursPerYear),
		CostSavedDisplay: FormatAbbreviatedCurrency(s.CostSavedPerYear),
	}
}
