package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// WalkthroughStep is one stage of the product page's incident-to-execution
// story. Note and Checks are optional.
type WalkthroughStep struct {
	Icon        string
	Title       string
	Description string
	Note        string
	Checks      []string
}

var WalkthroughSteps = []WalkthroughStep{
	{
		Icon:        "lucide--alert-triangle",
		Title:       "An Incident Is Created",
		Description: "When an issue occurs in production, your monitoring or alerting tools detect it immediately. An ITSM ticket is created for the incident, triggering the resolution workflow.",
		Checks:      []string{"Works with existing monitoring & ITSM tools"},
	},
	{
		Icon:        "lucide--file-text",
		Title:       "The Right Runbook Is Selected",
		Description: "Incidents often follow known, repeatable patterns. InMan identifies and selects the most relevant runbook for the situation, leveraging your team's proven operational knowledge to guide the response.",
	},
	{
		Icon:        "lucide--code",
		Title:       "Runbooks Become Context-Aware Scripts",
		Description: "InMan gathers real-time system context, including environment details, server state, and historical data, then converts the runbook into a script tailored specifically for that machine.",
		Note:        "No generic scripts. Context matters.",
	},
	{
		Icon:        "lucide--shield",
		Title:       "Safety and Risk Analysis",
		Description: "Before execution, the generated script is thoroughly analyzed. Security checks are performed, blast radius is evaluated, and operational impact is assessed.",
		Checks:      []string{"What will change", "What systems are affected", "Expected risk level"},
	},
	{
		Icon:        "lucide--clipboard-check",
		Title:       "Governance and Policy Validation",
		Description: "The script is checked against your company's governance policies. Non-compliant scripts are blocked or flagged before they can run.",
		Checks:      []string{"Least privilege enforcement", "Environment restrictions", "Approval requirements"},
	},
	{
		Icon:        "lucide--user-check",
		Title:       "Human Review and Approval",
		Description: "The script and analysis are sent to the user application. The incident is assigned to the appropriate engineer who can approve execution or add extra context to regenerate the script.",
		Note:        "Humans stay in control. No blind automation.",
	},
	{
		Icon:        "lucide--play",
		Title:       "Safe Execution Through an Isolated Runner",
		Description: "Once approved, the script executes through a secure, isolated runner using minimal privileges. Every action is fully logged and auditable.",
		Checks:      []string{"Predictable execution", "Reduced risk", "Faster resolution"},
	},
}

var stepOrdinals = []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"}

func stepLabel(i int) string {
	if i < len(stepOrdinals) {
		return "Step " + stepOrdinals[i]
	}
	return fmt.Sprintf("Step %d", i+1)
}

func ProductIntro() g.Node {
	return Section(
		Class("hero hero-compact"),
		Div(Class("hero-glow")),
		Div(
			Class("section-container hero-inner"),
			H1(Class("hero-title"), g.Text("What is InMan?")),
			P(
				Class("hero-subtitle"),
				g.Text("InMan is a governed execution platform that converts operational runbooks into safe, approved, and auditable actions, giving your team the confidence to resolve incidents without risk."),
			),
			Div(
				Class("hero-actions"),
				A(
					Href("#step-1"),
					Class("btn btn-hero btn-lg"),
					g.Text("See How It Works"),
					Icon("lucide--arrow-down size-4", ""),
				),
			),
		),
	)
}

func Walkthrough() g.Node {
	var sections []g.Node
	for i, step := range WalkthroughSteps {
		sections = append(sections, walkthroughStep(i, step))
	}
	return g.Group(sections)
}

func walkthroughStep(i int, step WalkthroughStep) g.Node {
	sectionClass := "section walkthrough-step"
	if i%2 == 1 {
		sectionClass += " section-tinted walkthrough-step-reversed"
	}

	return Section(
		ID(fmt.Sprintf("step-%d", i+1)),
		Class(sectionClass),
		Div(
			Class("section-container grid-2 walkthrough-grid"),
			Div(
				Class("walkthrough-copy reveal"),
				Span(
					Class("pill"),
					Span(Class("pill-number"), g.Textf("%d", i+1)),
					g.Text(stepLabel(i)),
				),
				H2(Class("section-heading"), g.Text(step.Title)),
				P(Class("muted lead"), g.Text(step.Description)),
				g.If(step.Note != "", P(Class("walkthrough-note"), g.Text(step.Note))),
				g.If(len(step.Checks) > 0, Ul(
					Class("plain-list"),
					g.Group(g.Map(step.Checks, CheckItem)),
				)),
			),
			Div(
				Class("walkthrough-visual reveal"),
				IconBadge(step.Icon, "xl"),
			),
		),
	)
}
