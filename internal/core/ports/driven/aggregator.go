package driven

import "github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"

// Aggregator groups raw records into a descriptor table.
type Aggregator interface {
	// Aggregate returns a fresh table built from records in input order.
	// It never fails; records with blank fields are dropped.
	Aggregate(source string, records []domain.RawRecord) *domain.DescriptorTable
}

// LevelNormalizer canonicalises a free-form level label to "Level n".
// Labels that carry no recognisable number come back trimmed but otherwise unchanged.
type LevelNormalizer interface {
	Normalize(label string) string
}
