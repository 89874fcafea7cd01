package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var (
	whatItIs = []string{
		"Safely execute operational actions on servers and infrastructure",
		"Standardize how work is done across people, shifts, and sites",
		"Reduce human error without removing human control",
		"Maintain clear visibility into who did what, when, and why",
	}

	whatItIsNot = []string{
		"An autonomous remediation system",
		"A generic automation or orchestration tool",
		"A replacement for engineers or existing infrastructure tools",
		"A CI/CD or provisioning platform",
	}

	integrations = []string{
		"Monitoring and alerting systems",
		"ITSM and ticketing platforms",
		"Existing scripts and runbooks",
		"Cloud, VM, and on-prem environments",
	}

	platformControls = []string{"Approvals", "Policies", "Audits", "Safety Checks"}
)

func ProductSection() g.Node {
	return Section(
		ID("product"),
		Class("section section-tinted"),
		Div(
			Class("section-container"),
			SectionHeader("", "Product Overview", "InMan is a governed execution platform that brings safety, control, and auditability to infrastructure operations."),

			Div(
				Class("card card-padded reveal"),
				Div(
					Class("card-heading"),
					IconBadge("lucide--workflow", "lg"),
					Div(
						H3(Class("card-title-lg"), g.Text("What InMan Is")),
						P(Class("muted"), g.Text("A governed execution platform for infrastructure operations")),
					),
				),
				P(Class("muted card-lead"), g.Text("InMan turns runbooks into controlled, executable workflows with built-in approvals, safety checks, and full auditability. InMan helps teams:")),
				Ul(
					Class("grid-2 check-list"),
					g.Group(g.Map(whatItIs, CheckItem)),
				),
			),

			Div(
				Class("grid-2 product-columns"),

				Div(
					Class("card card-padded reveal"),
					Div(
						Class("card-heading"),
						IconBadge("lucide--x-circle", "md"),
						H3(Class("card-title"), g.Text("What InMan Is Not")),
					),
					Ul(
						Class("plain-list"),
						g.Group(g.Map(whatItIsNot, func(item string) g.Node {
							return Li(
								Class("cross-item"),
								Icon("lucide--x-circle", ""),
								Span(Class("muted"), g.Text(item)),
							)
						})),
					),
					P(Class("card-footnote"), g.Text("It does not invent fixes or run unchecked scripts. Every action is intentional, reviewed, and governed.")),
				),

				Div(
					Class("card card-padded reveal"),
					Div(
						Class("card-heading"),
						IconBadge("lucide--layers", "md"),
						H3(Class("card-title"), g.Text("Where InMan Fits")),
					),
					P(Class("muted"), g.Text("InMan sits between people and infrastructure, alongside your existing tools. It works with:")),
					Ul(
						Class("plain-list"),
						g.Group(g.Map(integrations, CheckItem)),
					),
					P(Class("card-footnote"), g.Text("InMan does not replace these systems. It adds a safe execution layer that governs how infrastructure actions are carried out.")),
				),
			),

			architectureDiagram(),
		),
	)
}

func architectureDiagram() g.Node {
	targets := []struct {
		Icon  string
		Label string
	}{
		{"lucide--server", "Servers"},
		{"lucide--cloud", "Cloud"},
		{"lucide--monitor", "VMs"},
	}

	return Div(
		Class("card card-padded architecture reveal"),
		H3(Class("card-title architecture-title"), g.Text("InMan in Your Stack")),

		Div(
			Class("architecture-flow"),
			Div(
				Class("architecture-node"),
				IconBadge("lucide--users", "lg"),
				Span(Class("muted small"), g.Text("Engineers")),
				Span(Class("muted tiny"), g.Text("Human Control")),
			),
			Div(Class("architecture-link")),
			Div(
				Class("architecture-platform"),
				Span(Class("architecture-brand"), g.Text("InMan")),
				H4(g.Text("Governed Execution Platform")),
				Div(
					Class("chip-row"),
					g.Group(g.Map(platformControls, func(c string) g.Node {
						return Span(Class("chip"), g.Text(c))
					})),
				),
			),
			Div(Class("architecture-link")),
			Div(
				Class("architecture-runner"),
				Div(
					Class("architecture-runner-head"),
					Icon("lucide--arrow-right text-primary", ""),
					Span(Class("strong"), g.Text("Runner")),
					Span(Class("pill"), g.Text("Least Privileged")),
				),
				P(Class("muted small"), g.Text("Installed locally in your environment")),
			),
			Div(Class("architecture-link")),
			Div(
				Class("architecture-targets"),
				g.Group(g.Map(targets, func(t struct {
					Icon  string
					Label string
				}) g.Node {
					return Div(
						Class("architecture-target"),
						IconBadge(t.Icon, "lg"),
						Span(Class("muted tiny"), g.Text(t.Label)),
					)
				})),
			),
		),

		P(Class("muted small architecture-caption"), g.Text("Full visibility and control at every step")),
	)
}
