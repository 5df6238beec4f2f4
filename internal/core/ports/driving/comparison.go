package driving

import "github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"

// ComparisonService prepares level comparisons and interprets their results.
// Calling a language model is left to the caller.
type ComparisonService interface {
	// NewSession starts an empty comparison session.
	NewSession() Session

	// BuildPrompt renders the comparison prompt for one level of each side.
	// Level labels are normalised first, so "4" and "Level Four" both select "Level 4".
	// Returns domain.ErrNotFound if either level is absent from its table.
	BuildPrompt(session Session, primaryLevel, secondaryLevel string) (*domain.ComparisonPrompt, error)

	// Score extracts the similarity score from a model response and bands it.
	// A threshold of zero uses the configured High threshold.
	Score(response string, threshold int) (domain.ScoreResult, error)
}
