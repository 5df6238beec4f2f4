package driven

import (
	"context"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// Normaliser turns an artefact of one format into raw records.
// Each normaliser handles specific formats (e.g., CSV, PDF).
type Normaliser interface {
	// Name returns the normaliser name for logging.
	Name() string

	// SupportedFormats returns the artefact formats this normaliser handles.
	SupportedFormats() []domain.Format

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise reads the artefact into raw, not yet aggregated, records.
	Normalise(ctx context.Context, artefact *domain.Artefact) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
// Note: Normalisation only produces raw records.
// Grouping into a table is handled by the aggregator.
type NormaliseResult struct {
	Records []domain.RawRecord

	// Warnings are non-fatal diagnostics such as skipped rows.
	Warnings []domain.Warning

	// Strategy names the text extraction strategy used, if any.
	Strategy string
}
