// Package extractors provides text extraction strategies for paginated
// documents and the chain that tries them in order.
package extractors

import (
	"context"
	"fmt"
	"strings"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

// Chain tries TextExtractors in order and returns the first text found.
// It implements the ExtractionChain interface.
type Chain struct {
	extractors []driven.TextExtractor
}

// NewChain creates a chain with the given extractors.
// Extractors are tried in the order provided.
func NewChain(extractors ...driven.TextExtractor) *Chain {
	return &Chain{
		extractors: extractors,
	}
}

// Extract runs each strategy until one yields non-blank text that accept
// approves.
//
// A strategy that opens the document but finds no text is not a failure,
// and neither is one whose text is rejected. If no text is accepted, the
// first rejected text is returned; failing that, if at least one strategy
// opened the document, the result is empty text with no error so the
// caller can report an empty result. Only when every strategy fails is a
// *domain.ExtractionError returned.
func (c *Chain) Extract(ctx context.Context, content []byte, accept driven.AcceptFunc) (*driven.ExtractionResult, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}

	result := &driven.ExtractionResult{}
	opened := ""
	var rejected *driven.ExtractionResult

	for _, ex := range c.extractors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := ex.Extract(ctx, content)
		if err != nil {
			logger.Debug("extract: strategy %s failed: %v", ex.Name(), err)
			result.Failed = append(result.Failed, domain.ExtractionAttempt{Strategy: ex.Name(), Err: err})
			continue
		}

		if strings.TrimSpace(text) == "" {
			logger.Debug("extract: strategy %s found no text", ex.Name())
			if opened == "" {
				opened = ex.Name()
			}
			continue
		}

		if accept != nil && !accept(text) {
			logger.Debug("extract: strategy %s text rejected", ex.Name())
			if rejected == nil {
				rejected = &driven.ExtractionResult{Text: text, Strategy: ex.Name()}
			}
			continue
		}

		logger.Debug("extract: strategy %s returned %d bytes", ex.Name(), len(text))
		result.Text = text
		result.Strategy = ex.Name()
		return result, nil
	}

	if rejected != nil {
		result.Text = rejected.Text
		result.Strategy = rejected.Strategy
		return result, nil
	}

	if opened != "" {
		result.Strategy = opened
		return result, nil
	}

	return nil, &domain.ExtractionError{Attempts: result.Failed}
}

// Add appends an extractor to the chain.
func (c *Chain) Add(extractor driven.TextExtractor) {
	c.extractors = append(c.extractors, extractor)
}

// Len returns the number of extractors in the chain.
func (c *Chain) Len() int {
	return len(c.extractors)
}

// Names returns the strategy names in order.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.extractors))
	for _, ex := range c.extractors {
		names = append(names, ex.Name())
	}
	return names
}
