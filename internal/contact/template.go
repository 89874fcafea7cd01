package contact

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// Text bodies use triple-stash so names like O'Brien are not HTML-escaped.
const textTemplate = `New demo request ({{{reference}}})

Name: {{{name}}}
Email: {{{email}}}
Company: {{{company}}}
{{#if role}}Role: {{{role}}}
{{/if}}Source: {{{source}}}

Message:
{{{message}}}
`

const htmlTemplate = `<h2>New demo request</h2>
<p style="color:#6b7280;font-size:12px">Reference {{reference}}</p>
<table cellpadding="4">
  <tr><td><strong>Name</strong></td><td>{{name}}</td></tr>
  <tr><td><strong>Email</strong></td><td><a href="mailto:{{email}}">{{email}}</a></td></tr>
  <tr><td><strong>Company</strong></td><td>{{company}}</td></tr>
  {{#if role}}<tr><td><strong>Role</strong></td><td>{{role}}</td></tr>{{/if}}
  <tr><td><strong>Source</strong></td><td>{{source}}</td></tr>
</table>
<h3>Message</h3>
<p style="white-space:pre-wrap">{{message}}</p>
`

// Templates renders the notification email sent to the sales inbox.
type Templates struct {
	text *raymond.Template
	html *raymond.Template
}

func NewTemplates() (*Templates, error) {
	text, err := raymond.Parse(textTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text template: %w", err)
	}
	html, err := raymond.Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html template: %w", err)
	}
	return &Templates{text: text, html: html}, nil
}

// RenderResult contains the rendered email content
type RenderResult struct {
	Text string
	HTML string
}

func (t *Templates) Render(req DemoRequest, reference string) (*RenderResult, error) {
	ctx := map[string]interface{}{
		"reference": reference,
		"name":      req.Name,
		"email":     req.Email,
		"company":   req.Company,
		"role":      req.Role,
		"source":    string(req.Source),
		"message":   req.MessageOrDefault(),
	}

	text, err := t.text.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}
	html, err := t.html.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}

	return &RenderResult{Text: text, HTML: html}, nil
}
