package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driving"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

// Ensure PipelineService implements the interface.
var _ driving.PipelineService = (*PipelineService)(nil)

// PipelineService runs one artefact through normalisation and aggregation.
// It holds no per-run state and is safe for concurrent use.
type PipelineService struct {
	registry   driven.NormaliserRegistry
	aggregator driven.Aggregator
}

// NewPipelineService creates a new pipeline service.
func NewPipelineService(registry driven.NormaliserRegistry, aggregator driven.Aggregator) *PipelineService {
	return &PipelineService{
		registry:   registry,
		aggregator: aggregator,
	}
}

// Process turns the artefact into a descriptor table.
func (s *PipelineService) Process(ctx context.Context, artefact *domain.Artefact) (*domain.PipelineResult, error) {
	if err := artefact.Validate(); err != nil {
		return nil, err
	}
	if s.registry == nil || s.aggregator == nil {
		return nil, errors.New("pipeline not configured")
	}

	done := logger.Stage("process " + artefact.Name)
	defer done()

	normalised, err := s.registry.Normalise(ctx, artefact)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", artefact.Name, err)
	}
	if normalised == nil {
		normalised = &driven.NormaliseResult{}
	}

	table := s.aggregator.Aggregate(artefact.Name, normalised.Records)
	result := &domain.PipelineResult{
		Table:    table,
		Warnings: slices.Clone(normalised.Warnings),
		Strategy: normalised.Strategy,
		Records:  len(normalised.Records),
	}

	if table.Empty() {
		logger.Warn("%s: %v", artefact.Name, domain.ErrEmptyResult)
		result.Warnings = append(result.Warnings, domain.Warning{
			Kind:    domain.WarningEmptyResult,
			Message: fmt.Sprintf("%s: %v", artefact.Name, domain.ErrEmptyResult),
		})
		return result, nil
	}

	logger.Debug("%s: %d records into %d levels", artefact.Name, result.Records, table.Len())
	return result, nil
}

// SupportedFormats returns the formats the registry can normalise.
func (s *PipelineService) SupportedFormats() []domain.Format {
	if s.registry == nil {
		return nil
	}
	return s.registry.SupportedFormats()
}
