package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var footerLinks = []NavLink{
	{"Problem", "#problem"},
	{"Product", "#product"},
	{"Use Cases", "#use-cases"},
	{"Security", "#security"},
	{"Contact", "#contact"},
}

func PageFooter(year int, onLanding bool) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("section-container footer-inner"),

			Div(
				Class("footer-brand"),
				A(Href("/"), Logo()),
				P(
					Class("muted small"),
					g.Text("Governed execution for infrastructure operations."),
				),
			),

			Nav(
				Class("footer-links"),
				g.Group(g.Map(footerLinks, func(l NavLink) g.Node {
					return A(Class("muted small"), Href(NavHref(l.Anchor, onLanding)), g.Text(l.Label))
				})),
			),

			P(
				Class("muted small footer-copy"),
				g.Text(fmt.Sprintf("© %d Inferman Labs. All rights reserved.", year)),
			),
		),
	)
}
