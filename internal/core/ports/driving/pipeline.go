package driving

import (
	"context"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// PipelineService turns one artefact into a descriptor table.
type PipelineService interface {
	// Process runs extraction or loading, segmentation and aggregation.
	// Empty output is reported as a warning on the result, not an error.
	Process(ctx context.Context, artefact *domain.Artefact) (*domain.PipelineResult, error)

	// SupportedFormats returns the artefact formats the pipeline accepts.
	SupportedFormats() []domain.Format
}
