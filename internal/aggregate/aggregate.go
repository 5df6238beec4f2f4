// Package aggregate groups raw records into a DescriptorTable.
package aggregate

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/levels"
)

// Ensure Aggregator implements the interface.
var _ driven.Aggregator = (*Aggregator)(nil)

type defaultNormalizer struct{}

func (defaultNormalizer) Normalize(label string) string { return levels.Normalize(label) }

// Aggregator builds descriptor tables. It holds no per-run state.
type Aggregator struct {
	normalizer driven.LevelNormalizer
	newID      func() string
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithNormalizer sets the level normalizer, for dialects with their own ordinal words.
func WithNormalizer(n driven.LevelNormalizer) Option {
	return func(a *Aggregator) {
		if n != nil {
			a.normalizer = n
		}
	}
}

// WithIDGenerator overrides the table ID source. Used by tests.
func WithIDGenerator(fn func() string) Option {
	return func(a *Aggregator) {
		if fn != nil {
			a.newID = fn
		}
	}
}

// New creates an aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		normalizer: defaultNormalizer{},
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type groupKey struct {
	level  string
	domain string
}

// Aggregate groups records by (canonical level, case-folded domain) and
// newline-joins their descriptors in input order. Carriage-return line
// breaks inside a descriptor become plain newlines. The stored domain label is
// the title-cased first occurrence. Records with a blank field are dropped.
// Every call returns a fresh table.
func (a *Aggregator) Aggregate(source string, records []domain.RawRecord) *domain.DescriptorTable {
	// Casers carry state and are not safe for concurrent use.
	fold := cases.Fold()
	title := cases.Title(language.English)

	var order []groupKey
	labels := make(map[groupKey]string)
	fragments := make(map[groupKey][]string)

	for _, r := range records {
		level := a.normalizer.Normalize(r.Level)
		domainLabel := strings.Join(strings.Fields(norm.NFC.String(r.Domain)), " ")
		fragment := strings.TrimSpace(lineBreaks.Replace(norm.NFC.String(r.Descriptor)))
		if level == "" || domainLabel == "" || fragment == "" {
			continue
		}

		key := groupKey{level: level, domain: fold.String(domainLabel)}
		if _, seen := labels[key]; !seen {
			order = append(order, key)
			labels[key] = title.String(domainLabel)
		}
		fragments[key] = append(fragments[key], fragment)
	}

	entries := make([]domain.TableEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, domain.TableEntry{
			Level:      key.level,
			Domain:     labels[key],
			Descriptor: strings.Join(fragments[key], "\n"),
		})
	}

	return domain.NewDescriptorTable(a.newID(), source, entries)
}

// Aggregate is a convenience wrapper using the default normalizer.
func Aggregate(source string, records []domain.RawRecord) *domain.DescriptorTable {
	return New().Aggregate(source, records)
}
