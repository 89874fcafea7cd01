package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var demoBenefits = []Benefit{
	{"lucide--shield", "Governed Execution", "Every action is intentional, reviewed, and auditable."},
	{"lucide--clock", "Faster Resolution", "Standardized workflows reduce mean time to resolution."},
	{"lucide--users", "Team Alignment", "Consistent execution across people, shifts, and sites."},
}

// DemoPage is the body of /demo: pitch on the left, form on the right.
func DemoPage(state ContactFormState) g.Node {
	return Main(
		Class("demo-page"),
		Div(
			Class("section-container grid-2 demo-grid"),

			Div(
				Class("demo-intro"),
				A(
					Href("/"),
					Class("back-link muted small"),
					Icon("lucide--arrow-left size-4", ""),
					g.Text("Back to Home"),
				),
				H1(Class("page-title"), g.Text("Request a Demo")),
				P(
					Class("muted lead"),
					g.Text("See how InMan can help your team execute infrastructure operations with safety, control, and full auditability. Schedule a personalized demo with our team."),
				),

				Div(
					Class("stack"),
					H3(Class("card-title"), g.Text("What you'll see:")),
					g.Group(g.Map(demoBenefits, benefitItem)),
				),

				Div(
					Class("demo-trust muted small"),
					Icon("lucide--check-circle size-4 text-primary", ""),
					Span(g.Text("No commitment required • 30-minute session • Personalized to your use case")),
				),
			),

			DemoForm(state),
		),
	)
}
