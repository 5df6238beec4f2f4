package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies how an artefact's bytes are interpreted.
type Format string

// Supported artefact formats.
const (
	// FormatCSV is a delimited table with Level, Domain and Descriptor columns.
	FormatCSV Format = "csv"

	// FormatPDF is a paginated document with free-text descriptors.
	FormatPDF Format = "pdf"
)

// IsValid returns true if the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatPDF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// MIMEType returns the conventional content type for the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat maps a declared extension such as "csv" or ".PDF" to a Format.
func ParseFormat(ext string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Artefact is an uploaded descriptor document: bytes plus declared format.
// The caller owns it; the pipeline never keeps a reference after a run.
type Artefact struct {
	// Name is the display name, usually the uploaded file name.
	Name string

	// Format is the declared format.
	Format Format

	// Content is the raw bytes.
	Content []byte
}

// NewArtefact builds an artefact whose format is taken from the name's extension.
func NewArtefact(name string, content []byte) (*Artefact, error) {
	format, err := ParseFormat(filepath.Ext(name))
	if err != nil {
		return nil, err
	}
	return &Artefact{
		Name:    filepath.Base(name),
		Format:  format,
		Content: content,
	}, nil
}

// Validate checks the artefact can be handed to the pipeline.
func (a *Artefact) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil artefact", ErrInvalidInput)
	}
	if !a.Format.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, a.Format)
	}
	if len(a.Content) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, a.Name)
	}
	return nil
}
