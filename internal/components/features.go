package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Icon        string
	Title       string
	Description string
}

func SecuritySection() g.Node {
	features := []Feature{
		{"lucide--shield", "Enterprise Security Posture", "InMan is built with enterprise security requirements in mind. We follow industry best practices for data protection, access control, and secure development."},
		{"lucide--lock", "Execution Isolation", "Every execution runs in isolated environments. Actions are sandboxed and cannot affect systems beyond their defined scope. No lateral movement, no unintended consequences."},
		{"lucide--eye", "Complete Transparency", "Every action, approval, and decision is logged with full context. Know exactly who did what, when, why, and what the outcome was. Perfect for compliance and post-incident review."},
		{"lucide--user-check", "Role-Based Access Control", "Fine-grained permissions ensure that only authorized personnel can execute specific actions. Approvals can be required based on action risk level and environment."},
		{"lucide--file-text", "Audit-Ready Logging", "InMan provides comprehensive audit logs that meet the requirements of SOC 2, ISO 27001, and other compliance frameworks. Export logs in standard formats for your GRC tools."},
		{"lucide--users", "Separation of Duties", "Enforce approval workflows that require sign-off from multiple parties. Prevent single points of failure in critical operations with mandatory review gates."},
	}

	return Section(
		ID("security"),
		Class("section section-tinted"),
		Div(
			Class("section-container"),

			Div(
				Class("section-header reveal"),
				Span(
					Class("pill pill-outline"),
					Icon("lucide--shield size-4", ""),
					g.Text("Enterprise Security"),
				),
				H2(Class("section-heading"), g.Text("Security & Trust")),
				P(Class("section-subheading"), g.Text("Built for environments where security is not optional. InMan provides the controls and visibility that regulated industries demand.")),
			),

			Div(
				Class("grid-3"),
				g.Group(g.Map(features, func(f Feature) g.Node {
					return Div(
						Class("card card-padded card-hover reveal"),
						IconBadge(f.Icon, "lg"),
						H3(Class("card-title"), g.Text(f.Title)),
						P(Class("muted small"), g.Text(f.Description)),
					)
				})),
			),

			Div(
				Class("trust-statement reveal"),
				Div(
					Class("card card-padded"),
					P(
						Class("muted lead"),
						g.Text(`"InMan is designed from the ground up for teams that cannot afford to compromise on security. Every feature, every integration, every decision we make starts with the question: `),
						Span(Class("strong"), g.Text(`how do we keep our customers' infrastructure safe?"`)),
					),
				),
			),
		),
	)
}
