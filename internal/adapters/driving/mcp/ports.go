package mcp

import (
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Pipeline extracts descriptor tables from files.
	Pipeline driving.PipelineService

	// Comparison builds prompts and scores responses.
	Comparison driving.ComparisonService

	// Settings exposes the active dialect and thresholds.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Pipeline == nil {
		return ErrMissingPipelineService
	}
	// Comparison and Settings are optional
	return nil
}
