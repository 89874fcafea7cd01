package roi

import "math"

// Range describes one calculator slider.
type Range struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

var (
	IncidentsRange = Range{Min: 100, Max: 2000, Step: 50, Default: 500}
	MTTRRange      = Range{Min: 4, Max: 24, Step: 1, Default: 8}
	CostRange      = Range{Min: 25, Max: 100, Step: 5, Default: 50}
)

// Clamp bounds v to [Min, Max]. NaN maps to Default.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Default
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Snap clamps v and rounds it to the nearest step counted from Min, which is
// what a range control does with a dragged value.
func (r Range) Snap(v float64) float64 {
	v = r.Clamp(v)
	if r.Step <= 0 {
		return v
	}
	steps := math.Round((v - r.Min) / r.Step)
	return math.Min(r.Max, r.Min+steps*r.Step)
}

// Inputs are the three operational assumptions the calculator takes.
type Inputs struct {
	IncidentsPerMonth float64 `json:"incidents_per_month"`
	MTTRHours         float64 `json:"mttr_hours"`
	CostPerHour       float64 `json:"cost_per_hour"`
}

func DefaultInputs() Inputs {
	return Inputs{
		IncidentsPerMonth: IncidentsRange.Default,
		MTTRHours:         MTTRRange.Default,
		CostPerHour:       CostRange.Default,
	}
}

// Normalize snaps every field into its range. Infinite values fall back to
// the field default rather than pinning to a bound.
func (in Inputs) Normalize() Inputs {
	return Inputs{
		IncidentsPerMonth: normalizeField(IncidentsRange, in.IncidentsPerMonth),
		MTTRHours:         normalizeField(MTTRRange, in.MTTRHours),
		CostPerHour:       normalizeField(CostRange, in.CostPerHour),
	}
}

func normalizeField(r Range, v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return r.Default
	}
	return r.Snap(v)
}
