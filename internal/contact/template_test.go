package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Render(t *testing.T) {
	tpl, err := NewTemplates()
	require.NoError(t, err)

	req := validRequest()
	req.Name = "Seán O'Brien"
	req.Company = "<Acme>"

	out, err := tpl.Render(req, "ref-123")
	require.NoError(t, err)

	assert.Contains(t, out.Text, "New demo request (ref-123)")
	assert.Contains(t, out.Text, "Name: Seán O'Brien")
	assert.Contains(t, out.Text, "Company: <Acme>")
	assert.Contains(t, out.Text, "Source: contact")
	assert.NotContains(t, out.Text, "Role:")

	assert.Contains(t, out.HTML, "&lt;Acme&gt;", "html body must escape user input")
	assert.NotContains(t, out.HTML, "<Acme>")
}

func TestTemplates_RenderRoleAndDefaultMessage(t *testing.T) {
	tpl, err := NewTemplates()
	require.NoError(t, err)

	req := validRequest()
	req.Role = "SRE Lead"
	req.Message = ""

	out, err := tpl.Render(req, "ref-456")
	require.NoError(t, err)

	assert.Contains(t, out.Text, "Role: SRE Lead\n")
	assert.Contains(t, out.Text, "No additional message provided.")
	assert.Contains(t, out.HTML, "<td>SRE Lead</td>")
}
