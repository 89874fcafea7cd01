package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type NavLink struct {
	Label  string
	Anchor string
}

var navLinks = []NavLink{
	{"Problem", "#problem"},
	{"Product", "#product"},
	{"Use Cases", "#use-cases"},
	{"Security", "#security"},
}

// NavHref points section anchors back at the landing page when rendered on
// any other page.
func NavHref(anchor string, onLanding bool) string {
	if onLanding {
		return anchor
	}
	return "/" + anchor
}

func Navbar(onLanding bool) g.Node {
	links := g.Map(navLinks, func(l NavLink) g.Node {
		return A(Class("nav-link"), Href(NavHref(l.Anchor, onLanding)), g.Text(l.Label))
	})
	mobileLinks := g.Map(navLinks, func(l NavLink) g.Node {
		return A(Class("mobile-nav-link"), Href(NavHref(l.Anchor, onLanding)), g.Attr("data-close-menu", ""), g.Text(l.Label))
	})

	return Header(
		ID("navbar"),
		Class("navbar"),
		g.Attr("data-scrolled", "false"),

		Div(
			Class("section-container"),
			Nav(
				Class("navbar-inner"),

				A(Href("/"), Logo()),

				Div(
					Class("nav-links"),
					g.Group(links),
					A(Class("nav-link"), Href("/product"), g.Text("How It Works")),
				),

				Div(
					Class("nav-cta"),
					A(Href("/demo"), Class("btn btn-hero btn-sm"), g.Text("Request a Demo")),
				),

				Button(
					Type("button"),
					Class("mobile-menu-toggle"),
					g.Attr("aria-controls", "mobile-menu"),
					g.Attr("aria-expanded", "false"),
					g.Attr("aria-label", "Toggle menu"),
					Icon("lucide--menu size-6", ""),
				),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("mobile-menu"),
			g.Attr("hidden", ""),
			Div(
				Class("section-container mobile-menu-inner"),
				g.Group(mobileLinks),
				A(Class("mobile-nav-link"), Href("/product"), g.Text("How It Works")),
				Div(
					Class("mobile-menu-cta"),
					A(Href("/demo"), Class("btn btn-hero btn-lg btn-block"), g.Text("Request a Demo")),
				),
			),
		),
	)
}
