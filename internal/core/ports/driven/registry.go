package driven

import (
	"context"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// NormaliserRegistry selects the appropriate normaliser for an artefact.
// It maintains a priority-ordered list of normalisers and dispatches
// based on the artefact's declared format.
type NormaliserRegistry interface {
	// Normalise transforms an artefact using the best matching normaliser.
	Normalise(ctx context.Context, artefact *domain.Artefact) (*NormaliseResult, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedFormats returns all formats that can be normalised.
	SupportedFormats() []domain.Format
}
