package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/InMan-Labs/inman-website/internal/roi"
)

type slider struct {
	Name     string
	Label    string
	Range    roi.Range
	Value    float64
	Display  string
	MinLabel string
	MaxLabel string
	Format   string
}

// ROICalculator renders the savings calculator. It is a GET form so it works
// without JavaScript; roi-calculator.js upgrades it to live updates through
// /api/roi.
func ROICalculator(est roi.Estimate) g.Node {
	in := est.Inputs
	sliders := []slider{
		{
			Name:     "incidents",
			Label:    "Average Routine Incidents per Month",
			Range:    roi.IncidentsRange,
			Value:    in.IncidentsPerMonth,
			Display:  roi.FormatGrouped(in.IncidentsPerMonth),
			MinLabel: roi.FormatGrouped(roi.IncidentsRange.Min),
			MaxLabel: roi.FormatGrouped(roi.IncidentsRange.Max),
			Format:   "count",
		},
		{
			Name:     "mttr",
			Label:    "Current MTTR (Mean Time To Resolve)",
			Range:    roi.MTTRRange,
			Value:    in.MTTRHours,
			Display:  formatNumber(in.MTTRHours) + " hrs",
			MinLabel: formatNumber(roi.MTTRRange.Min) + " hrs",
			MaxLabel: formatNumber(roi.MTTRRange.Max) + " hrs",
			Format:   "hours",
		},
		{
			Name:     "cost",
			Label:    "Average Cost per Incident per Hour",
			Range:    roi.CostRange,
			Value:    in.CostPerHour,
			Display:  "$" + formatNumber(in.CostPerHour),
			MinLabel: "$" + formatNumber(roi.CostRange.Min),
			MaxLabel: "$" + formatNumber(roi.CostRange.Max),
			Format:   "currency",
		},
	}

	return Section(
		ID("roi-calculator"),
		Class("section"),
		Div(
			Class("section-container"),
			SectionHeader("ROI Calculator", "See Your Potential Savings", "Calculate how much you could save by standardizing infrastructure operations with InMan."),

			g.El("form",
				Class("card card-padded roi-card reveal"),
				g.Attr("method", "get"),
				g.Attr("action", "/#roi-calculator"),
				g.Attr("data-roi-calculator", ""),
				g.Attr("data-endpoint", "/api/roi"),

				Div(
					Class("grid-2 roi-grid"),

					Div(
						Class("roi-inputs"),
						H3(Class("card-title"), g.Text("Your Current Operations")),
						g.Group(g.Map(sliders, rangeControl)),
						g.El("noscript",
							Button(Type("submit"), Class("btn btn-ghost btn-sm"), g.Text("Recalculate")),
						),
					),

					Div(
						Class("roi-outputs"),
						roiOutput(
							"lucide--clock", "Potential Time Saved", "hours per year",
							"time", est.TimeSavedDisplay, " hours/year", false,
							P(Class("muted small"), g.Text("Based on 50% MTTR reduction with governed execution")),
						),
						roiOutput(
							"lucide--dollar-sign", "Potential Cost Savings", "dollars per year",
							"cost", est.CostSavedDisplay, "/year", true,
							P(
								Class("roi-trend"),
								Icon("lucide--trending-up size-4", ""),
								Span(g.Text("Projected annual savings with InMan")),
							),
						),
					),
				),
			),
		),
	)
}

func rangeControl(s slider) g.Node {
	id := "roi-" + s.Name
	return Div(
		Class("roi-control"),
		Div(
			Class("roi-control-head"),
			Label(g.Attr("for", id), Class("muted"), g.Text(s.Label)),
			Span(
				Class("roi-value"),
				g.Attr("data-roi-display", s.Name),
				g.Attr("data-format", s.Format),
				g.Text(s.Display),
			),
		),
		Input(
			ID(id),
			Type("range"),
			Name(s.Name),
			Class("roi-range"),
			g.Attr("min", formatNumber(s.Range.Min)),
			g.Attr("max", formatNumber(s.Range.Max)),
			g.Attr("step", formatNumber(s.Range.Step)),
			Value(formatNumber(s.Value)),
		),
		Div(
			Class("roi-range-labels"),
			Span(g.Text(s.MinLabel)),
			Span(g.Text(s.MaxLabel)),
		),
	)
}

func roiOutput(icon, title, unitLabel, key, value, suffix string, highlight bool, footer g.Node) g.Node {
	valueClass := "roi-figure"
	if highlight {
		valueClass += " text-primary"
	}

	return Div(
		Class("roi-output"),
		Div(
			Class("roi-output-head"),
			IconBadge(icon, "round"),
			Div(
				Span(Class("muted small"), g.Text(title)),
				P(Class("muted tiny"), g.Text(unitLabel)),
			),
		),
		P(
			Class(valueClass),
			Span(g.Attr("data-roi-output", key), g.Text(value)),
			Span(Class("roi-figure-unit"), g.Text(suffix)),
		),
		footer,
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
