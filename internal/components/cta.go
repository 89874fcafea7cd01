package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DemoCTA closes the product walkthrough.
func DemoCTA() g.Node {
	return Section(
		Class("section"),
		Div(
			Class("section-container"),
			Div(
				Class("card card-padded cta reveal"),
				Div(Class("cta-glow")),
				H2(Class("section-heading"), g.Text("Ready to See InMan in Action?")),
				P(
					Class("section-subheading"),
					g.Text("Schedule a demo to learn how InMan can bring safety, control, and auditability to your infrastructure operations."),
				),
				Div(
					Class("hero-actions"),
					A(
						Href("/demo"),
						Class("btn btn-hero btn-lg"),
						g.Text("Talk to Us"),
						Icon("lucide--arrow-right size-4", ""),
					),
				),
			),
		),
	)
}
