package normalisers

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches artefacts to the highest-priority normaliser for
// their format.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser, keeping the list ordered by descending priority.
func (r *Registry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.normalisers = append(r.normalisers, normaliser)
	slices.SortStableFunc(r.normalisers, func(a, b driven.Normaliser) int {
		return b.Priority() - a.Priority()
	})
}

// SupportedFormats returns all formats that can be normalised.
func (r *Registry) SupportedFormats() []domain.Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var formats []domain.Format
	for _, n := range r.normalisers {
		for _, f := range n.SupportedFormats() {
			if !slices.Contains(formats, f) {
				formats = append(formats, f)
			}
		}
	}
	return formats
}

// Normalise selects a normaliser by format and runs it.
func (r *Registry) Normalise(ctx context.Context, artefact *domain.Artefact) (*driven.NormaliseResult, error) {
	if artefact == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.find(artefact.Format)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, artefact.Format)
	}

	logger.Debug("normalise: %s via %s", artefact.Name, n.Name())
	return n.Normalise(ctx, artefact)
}

func (r *Registry) find(format domain.Format) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.normalisers {
		if slices.Contains(n.SupportedFormats(), format) {
			return n
		}
	}
	return nil
}
