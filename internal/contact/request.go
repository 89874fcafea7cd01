// Package contact turns demo request form submissions into either an email
// delivered through Mailgun or a pre-filled mailto: link.
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length limits, matching the maxlength attributes on the forms.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxCompanyLength = 100
	MaxRoleLength    = 100
	MaxMessageLength = 1000
)

const defaultMessage = "No additional message provided."

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrFieldTooLong  = errors.New("field too long")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Source identifies which form a request came from.
type Source string

const (
	SourceDemoPage       Source = "demo"
	SourceContactSection Source = "contact"
)

type DemoRequest struct {
	Name    string
	Email   string
	Company string
	Role    string
	Message string
	Source  Source
}

// Normalize returns a copy with surrounding whitespace removed.
func (r DemoRequest) Normalize() DemoRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Role = strings.TrimSpace(r.Role)
	r.Message = strings.TrimSpace(r.Message)
	return r
}

// Validate checks required fields first, then the email format, then length
// limits. It does not trim; call Normalize first.
func (r DemoRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Company == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}

	limits := []struct {
		field string
		value string
		max   int
	}{
		{"name", r.Name, MaxNameLength},
		{"email", r.Email, MaxEmailLength},
		{"company", r.Company, MaxCompanyLength},
		{"role", r.Role, MaxRoleLength},
		{"message", r.Message, MaxMessageLength},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, l.field, l.max)
		}
	}

	return nil
}

func (r DemoRequest) Subject() string {
	return fmt.Sprintf("Demo Request from %s at %s", r.Name, r.Company)
}

// Body is the plain-text message used for mailto: links.
func (r DemoRequest) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\nCompany: %s\r\n", r.Name, r.Email, r.Company)
	if r.Role != "" {
		fmt.Fprintf(&b, "Role: %s\r\n", r.Role)
	}
	b.WriteString("\r\nMessage:\r\n")
	b.WriteString(r.MessageOrDefault())
	return b.String()
}

func (r DemoRequest) MessageOrDefault() string {
	if r.Message == "" {
		return defaultMessage
	}
	return r.Message
}

// MailtoURL builds a mailto: URI addressed to recipient with the subject and
// body pre-filled.
func (r DemoRequest) MailtoURL(recipient string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		recipient, encodeComponent(r.Subject()), encodeComponent(r.Body()))
}

// encodeComponent percent-encodes s with spaces as %20; mail clients do not
// decode '+' in mailto: headers.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// UserMessage maps a validation error to the text shown next to the form.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all required fields"
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, ErrFieldTooLong):
		return "One of the fields is too long, please shorten it"
	default:
		return "Something went wrong. Please try again or contact us directly."
	}
}
