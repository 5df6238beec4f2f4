package extractors

import (
	"fmt"
	"slices"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
)

// BuilderFunc creates a TextExtractor from generic config.
// Config is a map of strategy-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.TextExtractor, error)

// Registry maps strategy names to their builders.
// It allows dynamic construction of extraction chains from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a strategy builder to the registry.
// Name should be unique and match the extractor's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates an extractor by name with the given config.
// Returns error if the strategy name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.TextExtractor, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown extraction strategy: %s", name)
	}
	return builder(cfg)
}

// BuildChain builds the configured strategies into a chain, in order.
func (r *Registry) BuildChain(cfg domain.ExtractConfig) (*Chain, error) {
	chain := NewChain()
	for _, name := range cfg.Strategies {
		ex, err := r.Build(name, cfg.GetStrategyConfig(name))
		if err != nil {
			return nil, err
		}
		chain.Add(ex)
	}
	return chain, nil
}

// Has returns true if a strategy with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered strategy names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
