package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personapilot/internal/persona"
)

func TestComposeStructure(t *testing.T) {
	p := persona.NewCollegeStudent()

	got, err := Compose(p, "How do I study for finals?", "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, p.SystemPrompt()))
	assert.Contains(t, got, "\n\nUser Query: How do I study for finals?")
	assert.Contains(t, got, "Please provide your response in valid JSON format exactly matching this structure: \n```json\n")
	assert.Contains(t, got, jsonContract)

	// Schema is embedded as a fenced block.
	assert.Contains(t, got, "\"summary\"")
	assert.Contains(t, got, "\"action_items\"")
}

func TestComposeQueryDrivenSchema(t *testing.T) {
	p := persona.NewCollegeStudent()

	got, err := Compose(p, "What's the budget for this trip?", "")
	require.NoError(t, err)
	assert.Contains(t, got, "\"cost\"")
	assert.NotContains(t, got, "\"time_required\"")
	assert.NotContains(t, got, "\"timeline\"")

	// A neutral follow-up narrows the schema back down.
	got, err = Compose(p, "What should I pack?", "")
	require.NoError(t, err)
	assert.NotContains(t, got, "\"cost\"")
	assert.NotContains(t, got, "\"time_required\"")
}

func TestComposeIdempotent(t *testing.T) {
	p := persona.NewCollegeStudent()

	first, err := Compose(p, "How long will this take and what does it cost?", "")
	require.NoError(t, err)
	second, err := Compose(p, "How long will this take and what does it cost?", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposeContextPrecedence(t *testing.T) {
	p := persona.NewCollegeStudent()
	p.AddContext("asked about dorm food")

	got, err := Compose(p, "What next?", "meal plans cost $200/month")
	require.NoError(t, err)
	assert.Contains(t, got, "\n\nContext: meal plans cost $200/month")
	assert.NotContains(t, got, "Recent context:")

	got, err = Compose(p, "What next?", "")
	require.NoError(t, err)
	assert.Contains(t, got, "\n\nRecent context: asked about dorm food")
}

func TestComposeNoContext(t *testing.T) {
	p := persona.NewDeveloper()

	got, err := Compose(p, "Explain goroutines", "")
	require.NoError(t, err)
	assert.NotContains(t, got, "Context:")
	assert.Contains(t, got, "\n\nUser Query: Explain goroutines")
}
