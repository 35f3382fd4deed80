package prompt

import (
	"strings"

	"go.uber.org/zap"

	"personapilot/internal/structured"
)

// Template kinds supported by the Engine.
const (
	ZeroShot    = "zero_shot"
	OneShot     = "one_shot"
	FewShot     = "few_shot"
	RAGEnhanced = "rag_enhanced"
	Structured  = "structured"
)

var templates = map[string]string{
	ZeroShot:    "{system_prompt}\n\nUser Query: {query}",
	OneShot:     "{system_prompt}\n\nExample:\n{example}\n\nUser Query: {query}",
	FewShot:     "{system_prompt}\n\nExamples:\n{examples}\n\nUser Query: {query}",
	RAGEnhanced: "{system_prompt}\n\nContext: {context}\n\nUser Query: {query}",
	Structured:  "{system_prompt}\n\nUser Query: {query}\n\nPlease respond in the following format: {output_format}",
}

// placeholders lists every variable any template may reference. A rendered
// prompt still containing one of these means a required variable was missing.
var placeholders = []string{"{system_prompt}", "{query}", "{example}", "{examples}", "{context}", "{output_format}"}

// Params carries the variables available to a template. Optional fields left
// empty are simply not offered to the template.
type Params struct {
	SystemPrompt string
	Query        string
	Context      string
	Examples     []string
	OutputFormat *structured.Object
}

// Engine renders prompts from a fixed set of named templates and picks a
// template dynamically from query complexity.
type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Create renders the named template. Unknown kinds render as zero_shot, and a
// template whose variables are not all supplied also falls back to zero_shot.
func (e *Engine) Create(kind string, p Params) string {
	template, ok := templates[kind]
	if !ok {
		template = templates[ZeroShot]
	}

	pairs := []string{
		"{system_prompt}", p.SystemPrompt,
		"{query}", p.Query,
	}
	if p.Context != "" {
		pairs = append(pairs, "{context}", p.Context)
	}
	if len(p.Examples) > 0 {
		if kind == OneShot {
			pairs = append(pairs, "{example}", p.Examples[0])
		} else if kind == FewShot {
			pairs = append(pairs, "{examples}", strings.Join(p.Examples, "\n\n"))
		}
	}
	if p.OutputFormat != nil {
		if schema, err := p.OutputFormat.MarshalIndent(); err == nil {
			pairs = append(pairs, "{output_format}", schema)
		}
	}

	rendered := strings.NewReplacer(pairs...).Replace(template)
	for _, ph := range placeholders {
		if strings.Contains(rendered, ph) {
			e.logger.Error("missing template variable", zap.String("kind", kind), zap.String("variable", ph))
			return strings.NewReplacer(pairs...).Replace(templates[ZeroShot])
		}
	}
	e.logger.Debug("created prompt", zap.String("kind", kind))
	return rendered
}

// CreateDynamic picks a template from the available context and the query's
// stated complexity, then renders it. Context always wins; otherwise complex
// queries get few-shot examples, medium queries one example, and everything
// else renders zero-shot.
func (e *Engine) CreateDynamic(systemPrompt, query, context, complexity string, outputFormat *structured.Object) string {
	var kind string
	switch {
	case context != "":
		kind = RAGEnhanced
	case complexity == "complex":
		kind = FewShot
	case complexity == "medium":
		kind = OneShot
	default:
		kind = ZeroShot
	}

	var examples []string
	if kind == OneShot || kind == FewShot {
		examples = e.relevantExamples(query, complexity)
	}

	return e.Create(kind, Params{
		SystemPrompt: systemPrompt,
		Query:        query,
		Context:      context,
		Examples:     examples,
		OutputFormat: outputFormat,
	})
}

// relevantExamples would pull examples matched to the query. Placeholder
// examples for now.
//
// TODO: source examples from each persona's ExampleQueries.
func (e *Engine) relevantExamples(query, complexity string) []string {
	return []string{
		"Example 1: Basic response example",
		"Example 2: More detailed response example",
	}
}

// Optimize trims a prompt to maxLength bytes by dropping whole trailing lines.
func Optimize(prompt string, maxLength int) string {
	if len(prompt) <= maxLength {
		return prompt
	}

	lines := strings.Split(prompt, "\n")
	kept := lines[:0]
	length := 0
	for _, line := range lines {
		if length+len(line) > maxLength {
			break
		}
		kept = append(kept, line)
		length += len(line) + 1
	}
	return strings.Join(kept, "\n")
}
