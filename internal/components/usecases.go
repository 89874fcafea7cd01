package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type UseCase struct {
	Icon        string
	Title       string
	Description string
	Features    []string
}

type Benefit struct {
	Icon        string
	Title       string
	Description string
}

var useCases = []UseCase{
	{
		Icon:        "lucide--alert-octagon",
		Title:       "Incident Response",
		Description: "When incidents occur, teams need to act fast, but safely. InMan ensures that remediation steps are executed consistently, with proper approvals, and with a full audit trail. No more ad-hoc SSH sessions or improvised fixes.",
		Features: []string{
			"Pre-approved runbooks ready for critical scenarios",
			"Real-time approval workflows for high-risk actions",
			"Complete audit log of every action taken",
			"Consistent execution across all responders",
		},
	},
	{
		Icon:        "lucide--settings",
		Title:       "Routine Infrastructure Operations",
		Description: "Day-to-day maintenance tasks such as patching, restarts, and configuration changes are often where errors creep in. InMan standardizes these operations so they're done the same way, every time, with built-in safety checks.",
		Features: []string{
			"Standardized procedures for common tasks",
			"Scheduled execution with policy enforcement",
			"Risk assessment before execution",
			"Handoff-ready documentation",
		},
	},
}

var useCaseBenefits = []Benefit{
	{"lucide--clock", "Faster Resolution", "Standardized execution reduces time to resolve"},
	{"lucide--shield", "Reduced Risk", "Built-in checks prevent costly mistakes"},
	{"lucide--history", "Full Accountability", "Every action is logged and attributable"},
}

func UseCasesSection() g.Node {
	return Section(
		ID("use-cases"),
		Class("section"),
		Div(
			Class("section-container"),
			SectionHeader("", "Use Cases", "InMan is built for the moments when infrastructure work carries the most risk."),

			Div(
				Class("stack"),
				g.Group(g.Map(useCases, func(uc UseCase) g.Node {
					return Div(
						Class("card card-padded use-case reveal"),
						Div(
							Class("use-case-body"),
							Div(
								Class("card-heading"),
								IconBadge(uc.Icon, "lg"),
								H3(Class("card-title-lg"), g.Text(uc.Title)),
							),
							P(Class("muted lead"), g.Text(uc.Description)),
						),
						Ul(
							Class("use-case-features"),
							g.Group(g.Map(uc.Features, CheckItem)),
						),
					)
				})),
			),

			Div(
				Class("grid-3 benefits"),
				g.Group(g.Map(useCaseBenefits, benefitItem)),
			),
		),
	)
}

func benefitItem(b Benefit) g.Node {
	return Div(
		Class("benefit reveal"),
		IconBadge(b.Icon, "md"),
		Div(
			H4(Class("benefit-title"), g.Text(b.Title)),
			P(Class("muted small"), g.Text(b.Description)),
		),
	)
}
