package domain

import (
	"fmt"
	"strings"
)

// Dialect is the vocabulary one qualification framework uses in its
// free-text descriptor documents. The segmenter is parameterised by it.
type Dialect struct {
	// Name identifies the dialect in config and diagnostics.
	Name string `json:"name"`

	// LevelKeywords open a level-boundary line, longest match wins
	// (e.g. "NQF Level" before "Level").
	LevelKeywords []string `json:"level_keywords"`

	// DomainNames are the named learning domains (e.g. Knowledge, Skills).
	DomainNames []string `json:"domain_names"`

	// OrdinalWords spell level numbers; index 0 is one.
	OrdinalWords []string `json:"ordinal_words"`

	// LeadIns are phrases after which a lettered domain's descriptor starts.
	LeadIns []string `json:"lead_ins"`
}

// DefaultDialect returns the vocabulary shared by the supported frameworks.
func DefaultDialect() Dialect {
	return Dialect{
		Name:          "default",
		LevelKeywords: []string{"NQF Level", "Level"},
		DomainNames:   []string{"Knowledge", "Skills", "Responsibility", "Autonomy", "Competence"},
		OrdinalWords: []string{
			"One", "Two", "Three", "Four", "Five",
			"Six", "Seven", "Eight", "Nine", "Ten",
		},
		LeadIns: []string{"in respect of which"},
	}
}

// Validate checks the dialect can drive a segmenter.
func (d Dialect) Validate() error {
	if len(d.LevelKeywords) == 0 {
		return fmt.Errorf("%w: dialect %q has no level keywords", ErrInvalidInput, d.Name)
	}
	if len(d.DomainNames) == 0 {
		return fmt.Errorf("%w: dialect %q has no domain names", ErrInvalidInput, d.Name)
	}
	for _, group := range [][]string{d.LevelKeywords, d.DomainNames, d.OrdinalWords, d.LeadIns} {
		for _, w := range group {
			if strings.TrimSpace(w) == "" {
				return fmt.Errorf("%w: dialect %q contains a blank word", ErrInvalidInput, d.Name)
			}
		}
	}
	return nil
}
