package driven

import (
	"context"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// TextExtractor obtains the plain text of a paginated document.
// Implementations concatenate page text in page order and apply no
// normalisation.
type TextExtractor interface {
	// Name returns the strategy name for logging and configuration.
	Name() string

	// Extract returns the document text. It fails when the container
	// cannot be opened or read.
	Extract(ctx context.Context, content []byte) (string, error)
}

// AcceptFunc reports whether extracted text is usable. Rejected text
// sends the chain on to the next strategy.
type AcceptFunc func(text string) bool

// ExtractionChain tries named extraction strategies in order.
type ExtractionChain interface {
	// Extract returns the text of the first strategy whose non-blank text
	// accept approves, the name of that strategy, and the attempts that
	// failed. A nil accept approves any non-blank text. When every text is
	// rejected the first rejected text is returned.
	// When every strategy fails the error is a *domain.ExtractionError.
	Extract(ctx context.Context, content []byte, accept AcceptFunc) (*ExtractionResult, error)
}

// ExtractionResult is the outcome of a chain run.
type ExtractionResult struct {
	Text string

	// Strategy is the name of the extractor whose text was returned.
	Strategy string

	// Failed lists strategies that errored before one succeeded.
	Failed []domain.ExtractionAttempt
}
