package csv

import (
	"context"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles tabular artefacts.
type Normaliser struct{}

// New creates a new CSV normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "csv"
}

// SupportedFormats returns the formats this normaliser handles.
func (n *Normaliser) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatCSV}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise loads the artefact's rows as raw records.
func (n *Normaliser) Normalise(_ context.Context, artefact *domain.Artefact) (*driven.NormaliseResult, error) {
	if artefact == nil {
		return nil, domain.ErrInvalidInput
	}

	loaded, err := Load(artefact.Content)
	if err != nil {
		return nil, err
	}

	return &driven.NormaliseResult{
		Records:  loaded.Records,
		Warnings: loaded.Warnings,
	}, nil
}
