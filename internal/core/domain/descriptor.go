package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// RawRecord is one (level, domain, descriptor) triple before aggregation.
// Both the tabular loader and the layout segmenter produce these.
type RawRecord struct {
	Level      string
	Domain     string
	Descriptor string
}

// Complete reports whether all three fields carry non-blank text.
func (r RawRecord) Complete() bool {
	return strings.TrimSpace(r.Level) != "" &&
		strings.TrimSpace(r.Domain) != "" &&
		strings.TrimSpace(r.Descriptor) != ""
}

// TableEntry is an aggregated descriptor for one (level, domain) pair.
type TableEntry struct {
	Level      string `json:"level"`
	Domain     string `json:"domain"`
	Descriptor string `json:"descriptor"`
}

// DescriptorTable maps canonical levels to domains to accumulated descriptor text.
// A table is the terminal product of one pipeline run and has no mutating methods.
type DescriptorTable struct {
	// ID uniquely identifies the pipeline run that produced the table.
	ID string

	// Source is the artefact name the table was built from.
	Source string

	levels map[string]*levelDescriptors
}

type levelDescriptors struct {
	domains     []string
	descriptors map[string]string
}

// NewDescriptorTable builds a table from entries in order.
// Entries with a blank level, domain or descriptor are dropped. Repeated
// (level, domain) pairs are newline-joined in the order given.
func NewDescriptorTable(id, source string, entries []TableEntry) *DescriptorTable {
	t := &DescriptorTable{
		ID:     id,
		Source: source,
		levels: make(map[string]*levelDescriptors),
	}

	for _, e := range entries {
		if e.Level == "" || e.Domain == "" || strings.TrimSpace(e.Descriptor) == "" {
			continue
		}

		lvl, ok := t.levels[e.Level]
		if !ok {
			lvl = &levelDescriptors{descriptors: make(map[string]string)}
			t.levels[e.Level] = lvl
		}

		if existing, ok := lvl.descriptors[e.Domain]; ok {
			lvl.descriptors[e.Domain] = existing + "\n" + e.Descriptor
			continue
		}
		lvl.domains = append(lvl.domains, e.Domain)
		lvl.descriptors[e.Domain] = e.Descriptor
	}

	return t
}

// Len returns the number of levels.
func (t *DescriptorTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.levels)
}

// Empty reports whether the table holds no descriptors.
func (t *DescriptorTable) Empty() bool {
	return t.Len() == 0
}

// Has reports whether the level exists.
func (t *DescriptorTable) Has(level string) bool {
	if t == nil {
		return false
	}
	_, ok := t.levels[level]
	return ok
}

// Levels returns the level keys sorted with CompareLevels.
func (t *DescriptorTable) Levels() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.levels))
	for k := range t.levels {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareLevels)
	return keys
}

// Domains returns the domains of a level in first-seen order.
func (t *DescriptorTable) Domains(level string) []string {
	if !t.Has(level) {
		return nil
	}
	return slices.Clone(t.levels[level].domains)
}

// Descriptor returns the accumulated text for a (level, domain) pair.
func (t *DescriptorTable) Descriptor(level, domain string) (string, bool) {
	if !t.Has(level) {
		return "", false
	}
	d, ok := t.levels[level].descriptors[domain]
	return d, ok
}

// Lines returns "Domain: Descriptor" lines for a level, used for prompts and reports.
func (t *DescriptorTable) Lines(level string) []string {
	if !t.Has(level) {
		return nil
	}
	lvl := t.levels[level]
	lines := make([]string, 0, len(lvl.domains))
	for _, d := range lvl.domains {
		lines = append(lines, d+": "+lvl.descriptors[d])
	}
	return lines
}

// Entries flattens the table into sorted levels and first-seen domain order.
func (t *DescriptorTable) Entries() []TableEntry {
	var entries []TableEntry
	for _, level := range t.Levels() {
		lvl := t.levels[level]
		for _, d := range lvl.domains {
			entries = append(entries, TableEntry{
				Level:      level,
				Domain:     d,
				Descriptor: lvl.descriptors[d],
			})
		}
	}
	return entries
}

// Equal compares level, domain and descriptor content, ignoring ID and Source.
func (t *DescriptorTable) Equal(other *DescriptorTable) bool {
	if t.Len() != other.Len() {
		return false
	}
	for _, level := range t.Levels() {
		if !other.Has(level) {
			return false
		}
		a, b := t.levels[level], other.levels[level]
		if !slices.Equal(a.domains, b.domains) {
			return false
		}
		for _, d := range a.domains {
			if a.descriptors[d] != b.descriptors[d] {
				return false
			}
		}
	}
	return true
}

type tableLevelJSON struct {
	Level   string            `json:"level"`
	Domains []tableDomainJSON `json:"domains"`
}

type tableDomainJSON struct {
	Domain     string `json:"domain"`
	Descriptor string `json:"descriptor"`
}

// MarshalJSON renders the table with levels and domains in display order.
func (t *DescriptorTable) MarshalJSON() ([]byte, error) {
	out := struct {
		ID     string           `json:"id"`
		Source string           `json:"source"`
		Levels []tableLevelJSON `json:"levels"`
	}{
		ID:     t.ID,
		Source: t.Source,
		Levels: make([]tableLevelJSON, 0, t.Len()),
	}
	for _, level := range t.Levels() {
		lvl := t.levels[level]
		entry := tableLevelJSON{Level: level}
		for _, d := range lvl.domains {
			entry.Domains = append(entry.Domains, tableDomainJSON{Domain: d, Descriptor: lvl.descriptors[d]})
		}
		out.Levels = append(out.Levels, entry)
	}
	return json.Marshal(out)
}
