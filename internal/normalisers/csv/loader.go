// Package csv loads level descriptors from delimited tables and writes
// tables back out in the same Level,Domain,Descriptor layout.
package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

// Required column names. Matching is case-exact.
const (
	ColumnLevel      = "Level"
	ColumnDomain     = "Domain"
	ColumnDescriptor = "Descriptor"
)

// Columns is the header row, in serialisation order.
var Columns = []string{ColumnLevel, ColumnDomain, ColumnDescriptor}

// bomRemnants are what a byte-order mark looks like after a file has been
// decoded once correctly or once as Latin-1.
var bomRemnants = []string{"\ufeff", "\u00ef\u00bb\u00bf"}

// LoadResult is the output of Load.
type LoadResult struct {
	Records  []domain.RawRecord
	Warnings []domain.Warning

	// Rows is the number of data rows read, including skipped ones.
	Rows int
}

// Load parses a descriptor table. A leading byte-order mark is honoured
// and removed. Rows with the wrong number of fields or broken quoting are
// skipped with a warning; rows with a blank required value are dropped.
// Missing required columns fail with a *domain.SchemaError.
func Load(content []byte) (*LoadResult, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), content)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	r := stdcsv.NewReader(bytes.NewReader(decoded))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.SchemaError{Missing: Columns}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *stdcsv.ParseError
		if errors.As(err, &parseErr) {
			result.Rows++
			result.skip(parseErr.StartLine, parseErr.Err.Error())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		result.Rows++

		if len(record) != len(header) {
			line, _ := r.FieldPos(0)
			result.skip(line, fmt.Sprintf("expected %d fields, got %d", len(header), len(record)))
			continue
		}

		rec := domain.RawRecord{
			Level:      strings.TrimSpace(record[idx[0]]),
			Domain:     strings.TrimSpace(record[idx[1]]),
			Descriptor: strings.TrimSpace(record[idx[2]]),
		}
		if !rec.Complete() {
			continue
		}
		result.Records = append(result.Records, rec)
	}

	logger.Debug("csv: %d rows, %d records, %d skipped", result.Rows, len(result.Records), len(result.Warnings))
	return result, nil
}

func (r *LoadResult) skip(line int, reason string) {
	logger.Warn("csv: skipping row at line %d: %s", line, reason)
	r.Warnings = append(r.Warnings, domain.Warning{
		Kind:    domain.WarningMalformedRow,
		Row:     line,
		Message: reason,
	})
}

// columnIndex locates the required columns, cleaning BOM remnants and
// surrounding whitespace from header names.
func columnIndex(header []string) ([3]int, error) {
	idx := [3]int{-1, -1, -1}
	for i, name := range header {
		name = cleanHeader(name)
		for j, col := range Columns {
			if name == col && idx[j] < 0 {
				idx[j] = i
			}
		}
	}

	var missing []string
	for j, col := range Columns {
		if idx[j] < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return idx, &domain.SchemaError{Missing: missing}
	}
	return idx, nil
}

func cleanHeader(name string) string {
	name = strings.TrimSpace(name)
	for _, bom := range bomRemnants {
		name = strings.TrimPrefix(name, bom)
	}
	return strings.TrimSpace(name)
}

// Encode writes a table as UTF-8, comma-delimited rows under a
// Level,Domain,Descriptor header, one row per (level, domain) pair.
func Encode(table *domain.DescriptorTable) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams the Encode form of a table to w.
func Write(w io.Writer, table *domain.DescriptorTable) error {
	cw := stdcsv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range table.Entries() {
		if err := cw.Write([]string{e.Level, e.Domain, e.Descriptor}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
