package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personapilot/internal/persona"
	"personapilot/internal/retrieval"
)

type fakeGenerator struct {
	lastPrompt string
	response   string
	err        error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func newTestSession(t *testing.T, g *fakeGenerator) *Session {
	t.Helper()
	return New(persona.NewRegistry(nil), g, nil, 1000, nil)
}

func TestRespondStructured(t *testing.T) {
	g := &fakeGenerator{response: `{"response": {"summary": "Study in blocks", "tips": ["use a timer"]}}`}
	s := newTestSession(t, g)

	out, err := s.Respond(context.Background(), "college_student", "How should I study?", Options{})
	require.NoError(t, err)

	assert.Contains(t, g.lastPrompt, "User Query: How should I study?")
	assert.Contains(t, out, "Study in blocks")
	assert.Contains(t, out, "use a timer")
}

func TestRespondUnknownPersona(t *testing.T) {
	s := newTestSession(t, &fakeGenerator{})

	_, err := s.Respond(context.Background(), "astronaut", "hi", Options{})
	require.Error(t, err)

	var nf *persona.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, err.Error(), "college_student")
}

func TestRespondFallbackRendering(t *testing.T) {
	g := &fakeGenerator{response: "I will not answer in JSON."}
	s := newTestSession(t, g)

	out, err := s.Respond(context.Background(), "developer", "Debug a memory leak in Node.js application", Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "## Response")
	assert.Contains(t, out, "Response could not be structured as JSON")
	assert.Contains(t, out, "Review the raw response below")
}

func TestRespondTransportErrorPropagates(t *testing.T) {
	g := &fakeGenerator{err: errors.New("connection refused")}
	s := newTestSession(t, g)

	_, err := s.Respond(context.Background(), "developer", "hi", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRespondRawMode(t *testing.T) {
	g := &fakeGenerator{response: `{"response": {"summary": "ok"}}`}
	s := newTestSession(t, g)

	out, err := s.Respond(context.Background(), "developer", "hi", Options{Mode: ModeRaw})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"response\": {\n    \"summary\": \"ok\"\n  }\n}", out)
}

func TestRespondPlainMode(t *testing.T) {
	g := &fakeGenerator{response: "plain text answer"}
	s := newTestSession(t, g)

	out, err := s.Respond(context.Background(), "developer", "hi", Options{Mode: ModePlain})
	require.NoError(t, err)
	assert.Equal(t, "plain text answer", out)

	// Plain mode renders the zero-shot template: no schema instructions.
	assert.Contains(t, g.lastPrompt, "User Query: hi")
	assert.NotContains(t, g.lastPrompt, "valid JSON format")
}

func TestRespondPlainModeWithContextUsesRagTemplate(t *testing.T) {
	g := &fakeGenerator{response: "plain text answer"}
	s := newTestSession(t, g)

	_, err := s.Respond(context.Background(), "developer", "hi", Options{
		Mode:    ModePlain,
		Context: "the service runs on Node 20",
	})
	require.NoError(t, err)

	assert.Contains(t, g.lastPrompt, "Context: the service runs on Node 20")
	assert.NotContains(t, g.lastPrompt, "valid JSON format")
}

func TestRespondExplicitContextRemembered(t *testing.T) {
	g := &fakeGenerator{response: `{"response": {"summary": "ok"}}`}
	s := newTestSession(t, g)

	_, err := s.Respond(context.Background(), "college_student", "next steps?", Options{Context: "we discussed exam prep"})
	require.NoError(t, err)
	assert.Contains(t, g.lastPrompt, "Context: we discussed exam prep")

	p, err := s.Registry().Get("college_student")
	require.NoError(t, err)
	assert.Contains(t, p.ContextSummary(), "we discussed exam prep")
}

func TestRespondUsesRetrievedContext(t *testing.T) {
	store, err := retrieval.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, store.AddDocument("Hostels in Lisbon average $25 per night.", nil))

	g := &fakeGenerator{response: `{"response": {"summary": "ok"}}`}
	s := New(persona.NewRegistry(nil), g, store, 1000, nil)

	_, err = s.Respond(context.Background(), "budget_traveler", "Lisbon hostels?", Options{})
	require.NoError(t, err)
	assert.Contains(t, g.lastPrompt, "Context: Hostels in Lisbon average $25 per night.")
}

func TestShapeForPersona(t *testing.T) {
	registry := persona.NewRegistry(nil)

	cases := map[string]string{
		"college_student": "structured_list",
		"budget_traveler": "itinerary",
		"developer":       "technical_guide",
	}
	for name, want := range cases {
		p, err := registry.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, string(shapeFor(p)), name)
	}
}
