// Package mcp provides an MCP (Model Context Protocol) server adapter for leveller.
// It lets AI assistants extract level descriptors and prepare level comparisons.
package mcp

import "errors"

// ErrMissingPipelineService is returned when the pipeline service is not provided.
var ErrMissingPipelineService = errors.New("mcp: pipeline service is required")

// ErrComparisonUnavailable is returned by comparison tools when no comparison service is configured.
var ErrComparisonUnavailable = errors.New("mcp: comparison service not configured")
