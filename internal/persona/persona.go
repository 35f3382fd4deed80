// Package persona defines the fixed behavioral modes of the assistant: each
// persona bundles a system prompt, personality metadata, an output-schema
// template, and a bounded context memory. Personas are created once at startup
// and live for the whole session.
package persona

import (
	"personapilot/internal/structured"
)

// Persona is the capability surface a behavioral mode exposes to the rest of
// the system. All implementations are data-driven; only preference analysis
// (see QueryAnalyzer) varies behavior per query.
type Persona interface {
	Name() string
	Description() string
	Traits() []string
	Expertise() []string
	CommunicationStyle() string

	// Preferences returns the persona's output-preference record: a "format"
	// tag plus boolean feature flags, in declaration order. The returned
	// object is live; preference analysis mutates it in place.
	Preferences() *structured.Object

	SystemPrompt() string
	ExampleQueries() []string

	// OutputFormat returns the schema tree the model is asked to fill in.
	// The tree reflects the current preference flags and is rebuilt on each
	// call, so widening is idempotent by construction.
	OutputFormat() *structured.Object

	// AddContext appends an entry to the persona's context memory.
	AddContext(ctx string)

	// ContextSummary returns a short summary of recent context, or "" when
	// the memory is empty.
	ContextSummary() string
}

// PreferenceDelta is the result of analyzing a query for dynamic output
// preferences. Keeping the analysis a pure query -> delta step makes the
// mutation explicit at the call site instead of hidden inside prompt assembly.
type PreferenceDelta struct {
	IncludeTimeEstimates bool
	IncludeCostEstimates bool
}

// QueryAnalyzer is implemented by personas whose output preferences depend on
// the incoming query text.
type QueryAnalyzer interface {
	AnalyzeQuery(query string) PreferenceDelta
}

// base carries the shared immutable persona data. Concrete personas embed it
// and add their OutputFormat method.
type base struct {
	name         string
	description  string
	traits       []string
	expertise    []string
	style        string
	prefs        *structured.Object
	systemPrompt string
	examples     []string
	memory       ContextMemory
}

func (b *base) Name() string                    { return b.name }
func (b *base) Description() string             { return b.description }
func (b *base) Traits() []string                { return b.traits }
func (b *base) Expertise() []string             { return b.expertise }
func (b *base) CommunicationStyle() string      { return b.style }
func (b *base) Preferences() *structured.Object { return b.prefs }
func (b *base) SystemPrompt() string            { return b.systemPrompt }
func (b *base) ExampleQueries() []string        { return b.examples }
func (b *base) AddContext(ctx string)           { b.memory.Add(ctx) }
func (b *base) ContextSummary() string          { return b.memory.Summary() }

// boolPref reads a boolean preference flag, treating absence as false.
func boolPref(prefs *structured.Object, key string) bool {
	v, ok := prefs.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
