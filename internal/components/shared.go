package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("logo"),
		Div(
			Class("logo-mark"),
			Span(g.Text("I")),
		),
		Span(
			Class("logo-name"),
			g.Text("Inferman Labs"),
		),
	)
}

// convertIconName turns "lucide--shield size-5" into the iconify id
// "lucide:shield".
func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify icon"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify icon %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is the rounded tinted square that leads every card.
func IconBadge(icon, size string) g.Node {
	return Div(
		Class(fmt.Sprintf("icon-badge icon-badge-%s", size)),
		Icon(icon, ""),
	)
}

func SectionHeader(eyebrow, title, subtitle string) g.Node {
	return Div(
		Class("section-header reveal"),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(Class("section-heading"), g.Text(title)),
		P(Class("section-subheading"), g.Text(subtitle)),
	)
}

func CheckItem(text string) g.Node {
	return Li(
		Class("check-item"),
		Icon("lucide--check-circle text-primary", ""),
		Span(g.Text(text)),
	)
}
