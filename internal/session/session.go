// Package session orchestrates one question-answer turn: persona lookup,
// context gathering, prompt composition, model call, and rendering.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"personapilot/internal/gateway"
	"personapilot/internal/persona"
	"personapilot/internal/prompt"
	"personapilot/internal/render"
	"personapilot/internal/retrieval"
)

// Mode selects how a response is returned to the caller.
type Mode string

const (
	// ModeStructured renders the parsed response with the persona's shape.
	ModeStructured Mode = "structured"
	// ModeRaw returns the parsed response as pretty-printed JSON.
	ModeRaw Mode = "raw"
	// ModePlain skips structuring entirely and returns the model's text.
	ModePlain Mode = "plain"
)

// Options adjust a single Respond call. The zero value means structured
// output with no extra context.
type Options struct {
	Context string
	Mode    Mode
}

// Session wires the turn pipeline together. The document store is optional;
// without one, queries run with persona memory alone.
type Session struct {
	registry         *persona.Registry
	generator        gateway.Generator
	store            *retrieval.Store
	engine           *prompt.Engine
	logger           *zap.Logger
	maxContextLength int
}

// maxPlainPromptLen caps plain-mode prompts; Optimize drops whole trailing
// lines past the cap.
const maxPlainPromptLen = 4000

// New creates a session. A nil logger logs nowhere.
func New(registry *persona.Registry, generator gateway.Generator, store *retrieval.Store, maxContextLength int, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxContextLength <= 0 {
		maxContextLength = 1000
	}
	return &Session{
		registry:         registry,
		generator:        generator,
		store:            store,
		engine:           prompt.NewEngine(logger),
		logger:           logger,
		maxContextLength: maxContextLength,
	}
}

// Registry exposes the persona registry for callers that drive selection.
func (s *Session) Registry() *persona.Registry {
	return s.registry
}

// Respond runs one full turn for the named persona. Explicit context wins
// over retrieved context; explicit context is also remembered by the persona.
// Transport errors propagate to the caller; malformed model output does not,
// it degrades to the fallback record and renders normally.
func (s *Session) Respond(ctx context.Context, personaName, query string, opts Options) (string, error) {
	requestID := uuid.NewString()
	log := s.logger.With(zap.String("request_id", requestID), zap.String("persona", personaName))

	p, err := s.registry.Get(personaName)
	if err != nil {
		return "", err
	}

	if opts.Context != "" {
		p.AddContext(opts.Context)
	}

	effectiveContext := opts.Context
	if effectiveContext == "" && s.store != nil {
		if retrieved, ok := s.store.ContextForQuery(query, s.maxContextLength); ok {
			effectiveContext = retrieved
			log.Debug("retrieved context", zap.Int("context_len", len(retrieved)))
		}
	}

	// Plain mode has no schema contract, so it goes through the template
	// engine instead of the structured composer: the rag_enhanced template
	// when context is available, zero_shot otherwise.
	if opts.Mode == ModePlain {
		plain := s.engine.CreateDynamic(p.SystemPrompt(), query, effectiveContext, "", nil)
		plain = prompt.Optimize(plain, maxPlainPromptLen)
		log.Debug("prompt composed", zap.Int("prompt_len", len(plain)))
		return s.generator.GenerateContent(ctx, plain)
	}

	composed, err := prompt.Compose(p, query, effectiveContext)
	if err != nil {
		return "", fmt.Errorf("compose prompt: %w", err)
	}
	log.Debug("prompt composed", zap.Int("prompt_len", len(composed)))

	value, err := gateway.GenerateStructured(ctx, s.generator, s.logger, composed, "json")
	if err != nil {
		log.Error("model call failed", zap.Error(err))
		return "", err
	}

	if opts.Mode == ModeRaw {
		return render.Render(value, render.FormatJSON), nil
	}

	shape := shapeFor(p)
	out := render.Render(value, shape)
	log.Info("turn completed", zap.String("shape", string(shape)), zap.Int("response_len", len(out)))
	return out, nil
}

// shapeFor reads the persona's preferred output shape, defaulting to the
// generic structured list.
func shapeFor(p persona.Persona) render.Format {
	if v, ok := p.Preferences().Get("format"); ok {
		if tag, ok := v.(string); ok && tag != "" {
			return render.Format(tag)
		}
	}
	return render.FormatStructuredList
}
