package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/InMan-Labs/inman-website/internal/contact"
	"github.com/InMan-Labs/inman-website/internal/roi"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestConvertIconName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"lucide--shield", "lucide:shield"},
		{"lucide--arrow-right size-4", "lucide:arrow-right"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, convertIconName(tt.in), tt.in)
	}
}

func TestIcon(t *testing.T) {
	html := render(t, Icon("lucide--menu size-6", ""))
	assert.Contains(t, html, `class="iconify icon size-6"`)
	assert.Contains(t, html, `data-icon="lucide:menu"`)
	assert.Contains(t, html, `aria-hidden="true"`)

	html = render(t, Icon("lucide--github", "GitHub"))
	assert.Contains(t, html, `role="img"`)
	assert.Contains(t, html, `aria-label="GitHub"`)
}

func TestLayout_Defaults(t *testing.T) {
	html := render(t, Layout(PageConfig{}, g.Text("body")))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>InMan - Governed Execution for Infrastructure Operations</title>")
	assert.Contains(t, html, `content="/static/images/og-image.svg"`)
	assert.Contains(t, html, `/static/js/roi-calculator.js`)
}

func TestNavHref(t *testing.T) {
	assert.Equal(t, "#security", NavHref("#security", true))
	assert.Equal(t, "/#security", NavHref("#security", false))
}

func TestNavbar(t *testing.T) {
	html := render(t, Navbar(true))
	assert.Contains(t, html, `href="#use-cases"`)
	assert.Contains(t, html, `href="/demo"`)
	assert.Contains(t, html, "Inferman Labs")

	html = render(t, Navbar(false))
	assert.Contains(t, html, `href="/#use-cases"`)
}

func TestNextProblemIndex(t *testing.T) {
	require.Len(t, Problems, 5)
	assert.Equal(t, 1, NextProblemIndex(0))
	assert.Equal(t, 4, NextProblemIndex(3))
	assert.Equal(t, 0, NextProblemIndex(4))
}

func TestProblemSection_FirstPanelActive(t *testing.T) {
	html := render(t, ProblemSection())

	assert.Contains(t, html, `data-rotate-interval="5000"`)
	assert.Contains(t, html, `<div class="problem-panel" data-problem-panel="0" data-next-panel="1">`)
	assert.Contains(t, html, `data-problem-panel="1" data-next-panel="2" hidden`)
	assert.Contains(t, html, `data-problem-panel="4" data-next-panel="0" hidden`)
	assert.Equal(t, 1, strings.Count(html, "is-active"))
}

func TestROICalculator(t *testing.T) {
	html := render(t, ROICalculator(roi.NewEstimate(roi.DefaultInputs())))

	assert.Contains(t, html, `data-endpoint="/api/roi"`)
	assert.Contains(t, html, `name="incidents"`)
	assert.Contains(t, html, `min="100" max="2000" step="50" value="500"`)
	assert.Contains(t, html, `min="4" max="24" step="1" value="8"`)
	assert.Contains(t, html, `min="25" max="100" step="5" value="50"`)
	assert.Contains(t, html, `<span data-roi-output="time">24.0K</span>`)
	assert.Contains(t, html, `<span data-roi-output="cost">$1M</span>`)
	assert.Contains(t, html, "2,000")
	assert.Contains(t, html, "<noscript>")
}

func TestContactSection_States(t *testing.T) {
	html := render(t, ContactSection(ContactFormState{}))
	assert.Contains(t, html, `action="/contact#contact"`)
	assert.Contains(t, html, `maxlength="255"`)
	assert.Contains(t, html, `maxlength="1000"`)
	assert.NotContains(t, html, `name="role"`)
	assert.NotContains(t, html, "flash")

	html = render(t, ContactSection(ContactFormState{
		Values: contact.DemoRequest{Name: `<b>Eve</b>`},
		Error:  "Please fill in all required fields",
	}))
	assert.Contains(t, html, "flash-error")
	assert.Contains(t, html, "Please fill in all required fields")
	assert.Contains(t, html, `value="&lt;b&gt;Eve&lt;/b&gt;"`)

	html = render(t, ContactSection(ContactFormState{Success: true}))
	assert.Contains(t, html, "flash-success")
}

func TestDemoPage(t *testing.T) {
	html := render(t, DemoPage(ContactFormState{}))

	assert.Contains(t, html, `action="/demo"`)
	assert.Contains(t, html, `name="role"`)
	assert.Contains(t, html, "Governed Execution")
	assert.Contains(t, html, "30-minute session")
}

func TestWalkthrough(t *testing.T) {
	require.Len(t, WalkthroughSteps, 7)
	html := render(t, Walkthrough())

	for i := 1; i <= 7; i++ {
		assert.Contains(t, html, fmt.Sprintf(`id="step-%d"`, i))
	}
	assert.Contains(t, html, "Step Seven")
	assert.Contains(t, html, "No generic scripts. Context matters.")
	assert.Equal(t, "Step 8", stepLabel(7))
}

func TestPageFooter(t *testing.T) {
	html := render(t, PageFooter(2031, false))

	assert.Contains(t, html, "© 2031 Inferman Labs. All rights reserved.")
	assert.Contains(t, html, `href="/#contact"`)
}

func TestStaticSections(t *testing.T) {
	for name, n := range map[string]g.Node{
		"hero":      Hero(),
		"product":   ProductSection(),
		"use cases": UseCasesSection(),
		"security":  SecuritySection(),
		"cta":       DemoCTA(),
		"intro":     ProductIntro(),
	} {
		assert.NotEmpty(t, render(t, n), name)
	}

	assert.Contains(t, render(t, SecuritySection()), `id="security"`)
	assert.Contains(t, render(t, UseCasesSection()), "Routine Infrastructure Operations")
}
