// Package pdftotext extracts document text by shelling out to poppler's
// pdftotext, which copes with layouts the pure-Go reader cannot.
package pdftotext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// ErrPDFToolNotFound is returned when pdftotext is not in PATH.
var ErrPDFToolNotFound = domain.ErrPDFToolNotFound

// CommandRunner executes external commands. Tests substitute a fake.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, exitErr.Stderr)
		}
		return nil, err
	}
	return out, nil
}

// Extractor runs pdftotext over a temporary copy of the document.
type Extractor struct {
	binary   string
	runner   CommandRunner
	lookPath func(string) (string, error)
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBinary sets the pdftotext binary name or path.
func WithBinary(path string) Option {
	return func(e *Extractor) {
		e.binary = path
	}
}

// WithRunner sets the command runner.
func WithRunner(r CommandRunner) Option {
	return func(e *Extractor) {
		e.runner = r
	}
}

// WithLookPath overrides binary discovery.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(e *Extractor) {
		e.lookPath = fn
	}
}

// New creates a pdftotext extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		binary:   "pdftotext",
		runner:   execRunner{},
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewWithRunner creates an extractor with a custom command runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	return New(WithRunner(runner))
}

// Name returns the strategy name.
func (e *Extractor) Name() string {
	return domain.StrategyPDFToText
}

// Extract writes content to a temporary file and returns pdftotext's output.
func (e *Extractor) Extract(ctx context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty PDF content", domain.ErrInvalidInput)
	}

	bin, err := e.lookPath(e.binary)
	if err != nil {
		return "", ErrPDFToolNotFound
	}

	tmp, err := os.CreateTemp("", "leveller-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	out, err := e.runner.Run(ctx, bin, "-layout", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}

	return string(out), nil
}

// CheckAvailable reports whether the pdftotext binary can be found.
// An empty binary checks for pdftotext on PATH.
func CheckAvailable(binary string) error {
	if binary == "" {
		binary = "pdftotext"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform-specific instructions for poppler.
func InstallInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "pdftotext is part of poppler. Install it with: brew install poppler"
	case "windows":
		return "pdftotext is part of poppler. Install it with: choco install poppler"
	default:
		return "pdftotext is part of poppler. Install it with: apt install poppler-utils (Debian/Ubuntu) or dnf install poppler-utils (Fedora)"
	}
}
