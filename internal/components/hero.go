package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("hero"),

		Div(Class("hero-glow")),

		Div(
			Class("section-container hero-inner"),

			Div(
				Class("hero-badge"),
				Span(Class("hero-badge-tag"), g.Text("NEW")),
				g.Text(" Governed execution for infrastructure operations"),
			),

			H1(
				Class("hero-title"),
				g.Text("Safe, Approved, and Auditable"),
				Br(),
				Span(Class("text-gradient"), g.Text("Infrastructure Operations")),
			),

			P(
				Class("hero-subtitle"),
				g.Text("InMan turns your runbooks into governed actions. Every change is context-aware, risk-assessed, policy-checked, and approved by a human before it touches production."),
			),

			Div(
				Class("hero-actions"),
				A(
					Href("/demo"),
					Class("btn btn-hero btn-lg"),
					g.Text("Request a Demo"),
					Icon("lucide--arrow-right size-4", ""),
				),
				A(
					Href("/product"),
					Class("btn btn-ghost btn-lg"),
					g.Text("See How It Works"),
				),
			),

			Ul(
				Class("hero-points"),
				CheckItem("Works with your existing runbooks"),
				CheckItem("Humans stay in control"),
				CheckItem("Full audit trail"),
			),
		),
	)
}
