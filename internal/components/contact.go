package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/InMan-Labs/inman-website/internal/contact"
)

// ContactFormState carries submitted values and flashes back into a form
// after a post.
type ContactFormState struct {
	Values  contact.DemoRequest
	Error   string
	Success bool
}

const successMessage = "Thank you! We'll be in touch within 24 hours."

func ContactSection(state ContactFormState) g.Node {
	return Section(
		ID("contact"),
		Class("section"),
		Div(
			Class("section-container contact-container"),
			SectionHeader("", "Get in Touch", "Ready to bring governed execution to your infrastructure operations? Let's talk."),

			Div(
				Class("card card-padded reveal"),
				formFlash(state),
				g.El("form",
					Class("contact-form"),
					g.Attr("method", "post"),
					g.Attr("action", "/contact#contact"),

					Div(
						Class("grid-2"),
						textField("contact-name", "name", "Name", "text", "Your name", state.Values.Name, contact.MaxNameLength, true),
						textField("contact-email", "email", "Email", "email", "you@company.com", state.Values.Email, contact.MaxEmailLength, true),
					),
					textField("contact-company", "company", "Company", "text", "Your company", state.Values.Company, contact.MaxCompanyLength, true),
					messageField("contact-message", "Tell us about your infrastructure operations challenges...", state.Values.Message),

					Button(
						Type("submit"),
						Class("btn btn-hero btn-lg btn-block"),
						g.Text("Request a Demo"),
						Icon("lucide--send size-4", ""),
					),
				),
			),
		),
	)
}

// DemoForm is the form on /demo. It adds the optional role field.
func DemoForm(state ContactFormState) g.Node {
	return Div(
		Class("card card-padded demo-form"),
		H2(Class("card-title-lg"), g.Text("Get Started")),
		formFlash(state),
		g.El("form",
			Class("contact-form"),
			g.Attr("method", "post"),
			g.Attr("action", "/demo"),

			textField("demo-name", "name", "Full Name *", "text", "John Smith", state.Values.Name, contact.MaxNameLength, true),
			textField("demo-email", "email", "Work Email *", "email", "john@company.com", state.Values.Email, contact.MaxEmailLength, true),
			textField("demo-company", "company", "Company *", "text", "Acme Corp", state.Values.Company, contact.MaxCompanyLength, true),
			textField("demo-role", "role", "Role", "text", "SRE Lead, DevOps Manager, etc.", state.Values.Role, contact.MaxRoleLength, false),
			messageField("demo-message", "Tell us about your infrastructure operations challenges or specific use cases you'd like to discuss...", state.Values.Message),

			Button(
				Type("submit"),
				Class("btn btn-hero btn-lg btn-block"),
				g.Text("Request Demo"),
				Icon("lucide--send size-4", ""),
			),
			P(Class("muted tiny centered"), g.Text("By submitting this form, you agree to be contacted about InMan.")),
		),
	)
}

func formFlash(state ContactFormState) g.Node {
	switch {
	case state.Error != "":
		return Div(
			Class("flash flash-error"),
			g.Attr("role", "alert"),
			Icon("lucide--alert-circle size-4", ""),
			Span(g.Text(state.Error)),
		)
	case state.Success:
		return Div(
			Class("flash flash-success"),
			g.Attr("role", "status"),
			Icon("lucide--check-circle size-4", ""),
			Span(g.Text(successMessage)),
		)
	}
	return nil
}

func textField(id, name, label, inputType, placeholder, value string, maxLength int, required bool) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", id), Class("field-label"), g.Text(label)),
		Input(
			ID(id),
			Name(name),
			Type(inputType),
			Class("field-input"),
			Placeholder(placeholder),
			Value(value),
			g.Attr("maxlength", strconv.Itoa(maxLength)),
			g.If(required, Required()),
		),
	)
}

func messageField(id, placeholder, value string) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", id), Class("field-label"), g.Text("Message")),
		Textarea(
			ID(id),
			Name("message"),
			Class("field-input"),
			Rows("4"),
			Placeholder(placeholder),
			g.Attr("maxlength", strconv.Itoa(contact.MaxMessageLength)),
			g.Text(value),
		),
	)
}
