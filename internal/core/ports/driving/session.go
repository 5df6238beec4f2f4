package driving

import (
	"context"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// Session holds the Primary and Secondary framework tables of one comparison
// workflow plus the comparisons recorded against them. Each side is loaded
// independently; a failure on one side leaves the other untouched.
type Session interface {
	// ID returns the unique session identifier.
	ID() string

	// Load processes the artefact and stores the outcome on the given side,
	// replacing whatever was there. A pipeline error is stored too.
	Load(ctx context.Context, side domain.Side, artefact *domain.Artefact) (*domain.PipelineResult, error)

	// Result returns the stored pipeline result for a side.
	// Returns domain.ErrNotFound if the side was never loaded, or the stored
	// pipeline error if loading failed.
	Result(side domain.Side) (*domain.PipelineResult, error)

	// Table returns the table for a side.
	// Returns domain.ErrEmptyResult if the side produced no descriptors.
	Table(side domain.Side) (*domain.DescriptorTable, error)

	// Ready returns true when both sides hold non-empty tables.
	Ready() bool

	// Identical returns true when both sides were loaded from byte-identical artefacts.
	Identical() bool

	// Reset clears one side.
	Reset(side domain.Side)

	// Record appends a scored comparison to the session history.
	Record(record domain.ComparisonRecord)

	// Records returns the comparison history in recording order.
	Records() []domain.ComparisonRecord
}
