package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ProblemRotateInterval is how long each problem card stays active, in
// milliseconds.
const ProblemRotateInterval = 5000

type Problem struct {
	Icon        string
	Title       string
	Description string
}

var Problems = []Problem{
	{"lucide--alert-triangle", "Human Error Is Built In", "Infrastructure actions rely on manual SSH, copy-paste commands, and on-the-fly decisions. Even experienced engineers make mistakes, especially under pressure."},
	{"lucide--shuffle", "Execution Is Inconsistent", "The same task is handled differently across people, shifts, and sites, leading to unpredictable outcomes and longer resolution times."},
	{"lucide--file-warning", "Runbooks Don't Enforce Safety", "Runbooks describe what to do, but they don't control how actions are executed. Steps are skipped, adjusted, or improvised."},
	{"lucide--zap", "Automation Is Too Risky", "Traditional automation can run anything, but lacks guardrails, approvals, and real-time context, making teams hesitant to use it in production."},
	{"lucide--eye", "No Governance at Execution Time", "Approvals, policies, and audits are often missing at the moment actions run on live infrastructure, the highest-risk point."},
}

// NextProblemIndex returns the card that follows i, wrapping at the end.
// The rotator script follows it through each panel's data-next-panel.
func NextProblemIndex(i int) int {
	if len(Problems) == 0 {
		return 0
	}
	return (i + 1) % len(Problems)
}

func ProblemSection() g.Node {
	active := 0

	var panels, tabs []g.Node
	for i, p := range Problems {
		panels = append(panels, Div(
			Class("problem-panel"),
			g.Attr("data-problem-panel", strconv.Itoa(i)),
			g.Attr("data-next-panel", strconv.Itoa(NextProblemIndex(i))),
			g.If(i != active, g.Attr("hidden", "")),
			IconBadge(p.Icon, "lg"),
			H3(Class("problem-panel-title"), g.Text(p.Title)),
			P(Class("problem-panel-text"), g.Text(p.Description)),
		))

		tabClass := "problem-tab"
		if i == active {
			tabClass += " is-active"
		}
		tabs = append(tabs, Button(
			Type("button"),
			Class(tabClass),
			g.Attr("data-problem-tab", strconv.Itoa(i)),
			g.Attr("aria-label", fmt.Sprintf("Show problem %d", i+1)),
			Div(
				Class("problem-tab-icon"),
				Icon(p.Icon, ""),
			),
			Div(
				H4(Class("problem-tab-title"), g.Text(p.Title)),
				P(Class("problem-tab-text"), g.Text(p.Description)),
			),
		))
	}

	return Section(
		ID("problem"),
		Class("section"),
		Div(
			Class("section-container"),
			SectionHeader("", "The Problem", "Infrastructure operations are too often risky, inconsistent, and ungoverned. Here's what teams face every day."),

			Div(
				Class("problem-rotator"),
				g.Attr("data-rotate-interval", strconv.Itoa(ProblemRotateInterval)),

				Div(
					Class("problem-stage card"),
					g.Group(panels),
					Div(
						Class("problem-dots"),
						g.Group(g.Map(Problems, func(p Problem) g.Node {
							return Span(Class("problem-dot"))
						})),
					),
				),

				Div(
					Class("problem-tabs"),
					g.Group(tabs),
				),
			),
		),
	)
}
