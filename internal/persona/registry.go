package persona

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"personapilot/internal/structured"
)

// NotFoundError is returned when a persona name is not registered. The
// message enumerates the valid names so an interactive caller can re-prompt.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("persona %q not found. Available: %s", e.Name, strings.Join(e.Available, ", "))
}

// Registry holds the fixed set of personas, keyed by name, in registration
// order. Names are unique; registration of a duplicate panics at startup.
type Registry struct {
	order    []string
	personas map[string]Persona
}

// NewRegistry creates a registry populated with the six built-in personas.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{personas: make(map[string]Persona)}

	for _, p := range []Persona{
		NewCollegeStudent(),
		NewBudgetTraveler(),
		NewDeveloper(),
		NewStartupFounder(),
		NewSciFiWriter(),
		NewBusinessman(),
	} {
		r.register(p)
		if logger != nil {
			logger.Info("Initialized persona", zap.String("name", p.Name()))
		}
	}
	return r
}

func (r *Registry) register(p Persona) {
	if _, ok := r.personas[p.Name()]; ok {
		panic(fmt.Sprintf("persona: duplicate name %q", p.Name()))
	}
	r.order = append(r.order, p.Name())
	r.personas[p.Name()] = p
}

// List returns the persona names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get returns the persona registered under name, or a *NotFoundError whose
// message lists every valid name.
func (r *Registry) Get(name string) (Persona, error) {
	p, ok := r.personas[name]
	if !ok {
		return nil, &NotFoundError{Name: name, Available: r.List()}
	}
	return p, nil
}

// OutputFormat returns the current (possibly preference-adjusted) schema tree
// for the named persona.
func (r *Registry) OutputFormat(name string) (*structured.Object, error) {
	p, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return p.OutputFormat(), nil
}

// Info describes a persona for display surfaces.
type Info struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	PersonalityTraits  []string `json:"personality_traits"`
	ExpertiseAreas     []string `json:"expertise_areas"`
	CommunicationStyle string   `json:"communication_style"`
	ExampleQueries     []string `json:"example_queries"`
}

// Describe returns display metadata for the named persona.
func (r *Registry) Describe(name string) (Info, error) {
	p, err := r.Get(name)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Name:               p.Name(),
		Description:        p.Description(),
		PersonalityTraits:  p.Traits(),
		ExpertiseAreas:     p.Expertise(),
		CommunicationStyle: p.CommunicationStyle(),
		ExampleQueries:     p.ExampleQueries(),
	}, nil
}

// CreateCustom is a placeholder for a future custom-persona workflow.
func (r *Registry) CreateCustom(name string) string {
	return fmt.Sprintf("Custom persona '%s' creation feature coming soon!", name)
}
