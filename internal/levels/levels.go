// Package levels maps the many ways frameworks spell a level label onto
// the canonical "Level N" form.
package levels

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
)

// Ensure Normalizer implements the interface.
var _ driven.LevelNormalizer = (*Normalizer)(nil)

var firstInteger = regexp.MustCompile(`\d+`)

// Normalizer canonicalises level labels.
// It is immutable after construction and safe for concurrent use.
type Normalizer struct {
	ordinals *regexp.Regexp
	values   map[string]int
}

// NewNormalizer builds a normalizer for the given ordinal words, where
// ordinalWords[i] spells the number i+1. Matching is case-insensitive.
func NewNormalizer(ordinalWords []string) *Normalizer {
	n := &Normalizer{values: make(map[string]int, len(ordinalWords))}

	words := make([]string, 0, len(ordinalWords))
	for i, w := range ordinalWords {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		n.values[strings.ToLower(w)] = i + 1
		words = append(words, regexp.QuoteMeta(w))
	}
	if len(words) == 0 {
		return n
	}

	// Longest first so "Seventeen" is never read as "Seven".
	slices.SortFunc(words, func(a, b string) int { return len(b) - len(a) })
	n.ordinals = regexp.MustCompile(`(?i)\b(` + strings.Join(words, "|") + `)\b`)
	return n
}

// Normalize returns "Level N" when the label contains an ordinal word or a
// positive integer, and the trimmed label otherwise. It is idempotent.
func (n *Normalizer) Normalize(label string) string {
	label = strings.TrimSpace(label)

	if n.ordinals != nil {
		if m := n.ordinals.FindString(label); m != "" {
			return domain.FormatLevel(n.values[strings.ToLower(m)])
		}
	}

	if m := firstInteger.FindString(label); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v > 0 {
			return domain.FormatLevel(v)
		}
	}

	return label
}

var defaultNormalizer = NewNormalizer(domain.DefaultDialect().OrdinalWords)

// Normalize canonicalises a label using the default ordinal words One..Ten.
func Normalize(label string) string {
	return defaultNormalizer.Normalize(label)
}
