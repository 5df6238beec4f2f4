// Package pdf normalises paginated descriptor documents: text is pulled
// out by an extraction chain and segmented into records by layout.
package pdf

import (
	"context"
	"fmt"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
	"github.com/james-keevy/acqf-eqf-comparator/internal/segmenter"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles PDF artefacts.
type Normaliser struct {
	chain     driven.ExtractionChain
	segmenter *segmenter.Segmenter
}

// New creates a PDF normaliser from an extraction chain and a segmenter.
func New(chain driven.ExtractionChain, seg *segmenter.Segmenter) *Normaliser {
	return &Normaliser{
		chain:     chain,
		segmenter: seg,
	}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "pdf"
}

// SupportedFormats returns the formats this normaliser handles.
func (n *Normaliser) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatPDF}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise extracts the document text and segments it into raw records.
// Text that segments into no records moves the chain on to the next
// strategy. Strategies that failed are reported as warnings.
func (n *Normaliser) Normalise(ctx context.Context, artefact *domain.Artefact) (*driven.NormaliseResult, error) {
	if artefact == nil {
		return nil, domain.ErrInvalidInput
	}

	var (
		seg     segmenter.Result
		segText string
	)
	accept := func(text string) bool {
		seg, segText = n.segmenter.Segment(text), text
		return !seg.Empty()
	}

	done := logger.Stage("extract " + artefact.Name)
	extracted, err := n.chain.Extract(ctx, artefact.Content, accept)
	done()
	if err != nil {
		return nil, err
	}

	result := &driven.NormaliseResult{Strategy: extracted.Strategy}
	for _, a := range extracted.Failed {
		result.Warnings = append(result.Warnings, domain.Warning{
			Kind:    domain.WarningStrategyFailed,
			Message: fmt.Sprintf("%s: %v", a.Strategy, a.Err),
		})
	}

	if segText != extracted.Text {
		seg = n.segmenter.Segment(extracted.Text)
	}
	logger.Debug("segment: %d lines, %d levels, %d records", seg.Lines, seg.Levels, len(seg.Records))
	result.Records = seg.Records

	return result, nil
}
