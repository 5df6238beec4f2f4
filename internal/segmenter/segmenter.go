// Package segmenter recovers (level, domain, descriptor) records from the
// flat text of a descriptor document using layout boundaries.
//
// Scanning is a three-state machine: no level, level open, domain open.
// A level-boundary line opens a level; a domain-boundary line opens a
// domain within it; any other line extends the open domain's descriptor.
// The vocabulary for both boundaries comes from a domain.Dialect.
package segmenter

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// maxLabelWords bounds how long a lettered-list label may be before the
// line is read as prose rather than a domain header.
const maxLabelWords = 6

var (
	pageNumber = regexp.MustCompile(`^\s*\d+\s*$`)
	lettered   = regexp.MustCompile(`(?i)^\s*\(?([a-z]|[ivx]{1,4})[.)]\s+(.+)$`)
	labelSep   = regexp.MustCompile(`[,:;–]|\s-\s`)
)

// Result is the output of one scan.
type Result struct {
	Records []domain.RawRecord

	// Lines is the number of non-blank lines scanned.
	Lines int

	// Levels is the number of level boundaries seen.
	Levels int
}

// Empty reports whether no records were recovered.
func (r Result) Empty() bool {
	return len(r.Records) == 0
}

// Segmenter scans text for one dialect.
// It is immutable after construction and safe for concurrent use.
type Segmenter struct {
	level  *regexp.Regexp
	named  *regexp.Regexp
	leadIn *regexp.Regexp
}

// New compiles the boundary patterns for a dialect.
func New(dialect domain.Dialect) (*Segmenter, error) {
	if err := dialect.Validate(); err != nil {
		return nil, err
	}

	ordinals := append([]string{`\d+`}, alternatives(dialect.OrdinalWords)...)

	// The keyword must open the line, optionally after punctuation or a
	// framework acronym, so in-sentence references do not split levels.
	level, err := regexp.Compile(fmt.Sprintf(
		`^[^\p{L}\p{N}]*((?:[A-Z]{2,6}\s+)?(?:%s)\s+(?i:%s)\b)(.*)$`,
		strings.Join(alternatives(levelKeywords(dialect.LevelKeywords)), "|"),
		strings.Join(ordinals, "|"),
	))
	if err != nil {
		return nil, fmt.Errorf("compile level pattern: %w", err)
	}

	named, err := regexp.Compile(fmt.Sprintf(
		`(?i)^[\s\p{P}\p{S}]*(%s)\b[\s:,.\-–]*(.*)$`,
		strings.Join(alternatives(dialect.DomainNames), "|"),
	))
	if err != nil {
		return nil, fmt.Errorf("compile domain pattern: %w", err)
	}

	s := &Segmenter{level: level, named: named}
	if len(dialect.LeadIns) > 0 {
		s.leadIn, err = regexp.Compile(`(?i)\b(?:` + strings.Join(alternatives(dialect.LeadIns), "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("compile lead-in pattern: %w", err)
		}
	}

	return s, nil
}

// levelKeywords adds the all-capitals spelling of each keyword, as used
// in headings, while keeping matching otherwise case-sensitive.
func levelKeywords(keywords []string) []string {
	out := slices.Clone(keywords)
	for _, k := range keywords {
		if upper := strings.ToUpper(k); upper != k {
			out = append(out, upper)
		}
	}
	return out
}

// alternatives quotes words for a regexp alternation, longest first,
// letting any run of whitespace stand in for a space.
func alternatives(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		fields := strings.Fields(w)
		if len(fields) == 0 {
			continue
		}
		for i, f := range fields {
			fields[i] = regexp.QuoteMeta(f)
		}
		out = append(out, strings.Join(fields, `\s+`))
	}
	slices.SortStableFunc(out, func(a, b string) int { return len(b) - len(a) })
	return out
}

// Segment scans text and returns the records found. It never returns a
// record with an empty descriptor.
func (s *Segmenter) Segment(text string) Result {
	sc := scan{seg: s}

	text = strings.ReplaceAll(text, "\f", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || pageNumber.MatchString(line) {
			continue
		}
		sc.result.Lines++
		sc.feed(line)
	}
	sc.flush()

	return sc.result
}

type scan struct {
	seg    *Segmenter
	result Result

	level  string
	domain string
	acc    []string
}

func (sc *scan) feed(line string) {
	if m := sc.seg.level.FindStringSubmatch(line); m != nil {
		sc.flush()
		sc.level = strings.Join(strings.Fields(m[1]), " ")
		sc.domain = ""
		sc.result.Levels++

		if rest := strings.TrimLeft(m[2], " \t:.-–"); rest != "" {
			sc.openDomain(rest)
		}
		return
	}

	if sc.level == "" {
		return
	}
	if sc.openDomain(line) {
		return
	}
	if sc.domain != "" {
		sc.acc = append(sc.acc, line)
	}
}

// openDomain starts a new domain if line is a domain boundary.
func (sc *scan) openDomain(line string) bool {
	label, rest, ok := sc.seg.domainBoundary(line)
	if !ok {
		return false
	}
	sc.flush()
	sc.domain = label
	if rest != "" {
		sc.acc = append(sc.acc, rest)
	}
	return true
}

func (sc *scan) flush() {
	descriptor := strings.TrimSpace(strings.Join(sc.acc, " "))
	sc.acc = sc.acc[:0]
	if sc.level == "" || sc.domain == "" || descriptor == "" {
		return
	}
	sc.result.Records = append(sc.result.Records, domain.RawRecord{
		Level:      sc.level,
		Domain:     sc.domain,
		Descriptor: descriptor,
	})
}

// domainBoundary matches the named form first, then the lettered form.
func (s *Segmenter) domainBoundary(line string) (label, rest string, ok bool) {
	if m := s.named.FindStringSubmatch(line); m != nil {
		return m[1], s.descriptorStart(m[2]), true
	}

	m := lettered.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	body := m[2]

	label, rest = body, ""
	if loc := labelSep.FindStringIndex(body); loc != nil {
		label, rest = body[:loc[0]], body[loc[1]:]
	}
	label = strings.TrimSpace(label)
	if label == "" || len(strings.Fields(label)) > maxLabelWords {
		return "", "", false
	}

	return label, s.descriptorStart(rest), true
}

// descriptorStart trims a lead-in phrase such as "in respect of which"
// so the descriptor begins with its own text.
func (s *Segmenter) descriptorStart(rest string) string {
	if s.leadIn != nil {
		if loc := s.leadIn.FindStringIndex(rest); loc != nil {
			rest = rest[loc[1]:]
		}
	}
	return strings.TrimSpace(strings.TrimLeft(rest, " \t:,.-–"))
}
