package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent pipeline failures tied to a single artefact.
// None of them is fatal to the process.
var (
	// ErrNotFound indicates a requested level or slot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an artefact extension the pipeline cannot read.
	ErrUnsupportedFormat = errors.New("unsupported artefact format")

	// ErrExtraction indicates the document container could not be opened or read.
	// Use errors.Is against this sentinel; the concrete error is *ExtractionError.
	ErrExtraction = errors.New("document extraction failed")

	// ErrSchema indicates required tabular columns are missing.
	// Use errors.Is against this sentinel; the concrete error is *SchemaError.
	ErrSchema = errors.New("tabular schema invalid")

	// ErrEmptyResult indicates an artefact produced no descriptors.
	// The pipeline reports this as a warning; it becomes an error only when
	// a caller tries to compare against the empty table.
	ErrEmptyResult = errors.New("no extractable descriptors")

	// ErrPDFToolNotFound indicates the pdftotext binary is not installed.
	ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")
)

// SchemaError reports the required tabular columns absent from a header row.
type SchemaError struct {
	// Missing lists the absent column names in canonical order.
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", ErrSchema, strings.Join(e.Missing, ", "))
}

// Is makes errors.Is(err, ErrSchema) hold for any SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ExtractionAttempt records the outcome of one named extraction strategy.
type ExtractionAttempt struct {
	// Strategy is the name of the extractor that was tried.
	Strategy string

	// Err is nil when the strategy opened the document.
	Err error
}

// ExtractionError is returned when no strategy could open the document.
type ExtractionError struct {
	Attempts []ExtractionAttempt
}

func (e *ExtractionError) Error() string {
	if len(e.Attempts) == 0 {
		return ErrExtraction.Error() + ": no extraction strategies configured"
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Strategy, a.Err))
	}
	return ErrExtraction.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrExtraction) hold for any ExtractionError.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// Unwrap exposes each strategy's failure to errors.Is and errors.As.
func (e *ExtractionError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		if a.Err != nil {
			errs = append(errs, a.Err)
		}
	}
	return errs
}
