package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// ExtractInput is the input schema for the extract_descriptors tool.
type ExtractInput struct {
	Path string `json:"path" jsonschema:"path to a CSV or PDF level descriptor file"`
}

// ExtractOutput is the output schema for the extract_descriptors tool.
type ExtractOutput struct {
	Source   string        `json:"source"`
	Strategy string        `json:"strategy,omitempty"`
	Levels   []LevelOutput `json:"levels"`
	Warnings []string      `json:"warnings,omitempty"`
}

// LevelOutput is one level with its "Domain: Descriptor" lines.
type LevelOutput struct {
	Level string   `json:"level"`
	Lines []string `json:"lines"`
}

// LoadInput is the input schema for the load_framework tool.
type LoadInput struct {
	Side string `json:"side" jsonschema:"which framework to load: primary or secondary"`
	Path string `json:"path" jsonschema:"path to a CSV or PDF level descriptor file"`
}

// LoadOutput is the output schema for the load_framework tool.
type LoadOutput struct {
	Side      string   `json:"side"`
	Levels    []string `json:"levels"`
	Warnings  []string `json:"warnings,omitempty"`
	Ready     bool     `json:"ready"`
	Identical bool     `json:"identical"`
}

// PromptInput is the input schema for the build_comparison_prompt tool.
type PromptInput struct {
	PrimaryLevel   string `json:"primary_level" jsonschema:"level of the primary framework, e.g. 4 or Level Four"`
	SecondaryLevel string `json:"secondary_level" jsonschema:"level of the secondary framework"`
}

// PromptOutput is the output schema for the build_comparison_prompt tool.
type PromptOutput struct {
	PrimaryLevel   string `json:"primary_level"`
	SecondaryLevel string `json:"secondary_level"`
	System         string `json:"system"`
	User           string `json:"user"`
}

// ScoreInput is the input schema for the score_response tool.
type ScoreInput struct {
	Response       string `json:"response" jsonschema:"the language model's comparison response"`
	Threshold      int    `json:"threshold,omitempty" jsonschema:"High match threshold 50-100 (default from settings)"`
	PrimaryLevel   string `json:"primary_level,omitempty" jsonschema:"primary level compared; when set with secondary_level the result is recorded"`
	SecondaryLevel string `json:"secondary_level,omitempty" jsonschema:"secondary level compared"`
}

// ScoreOutput is the output schema for the score_response tool.
type ScoreOutput struct {
	Score       int    `json:"score"`
	Found       bool   `json:"found"`
	Band        string `json:"band"`
	Description string `json:"description"`
	Recorded    bool   `json:"recorded"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_descriptors",
		Description: "Extract the canonical level descriptor table from a CSV or PDF file",
	}, s.handleExtract)

	if s.ports.Comparison == nil {
		return
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_framework",
		Description: "Load a framework file as the primary or secondary side of the comparison",
	}, s.handleLoad)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_comparison_prompt",
		Description: "Render the prompt comparing one level of each loaded framework",
	}, s.handleBuildPrompt)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "score_response",
		Description: "Read and band the similarity score in a comparison response",
	}, s.handleScore)
}

// handleExtract handles the extract_descriptors tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	artefact, err := loadArtefact(input.Path)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	result, err := s.ports.Pipeline.Process(ctx, artefact)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	output := ExtractOutput{
		Source:   result.Table.Source,
		Strategy: result.Strategy,
		Levels:   make([]LevelOutput, 0, result.Table.Len()),
		Warnings: warningStrings(result.Warnings),
	}
	for _, level := range result.Table.Levels() {
		output.Levels = append(output.Levels, LevelOutput{
			Level: level,
			Lines: result.Table.Lines(level),
		})
	}

	return nil, output, nil
}

// handleLoad handles the load_framework tool invocation.
func (s *Server) handleLoad(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadInput,
) (*mcp.CallToolResult, LoadOutput, error) {
	if s.session == nil {
		return nil, LoadOutput{}, ErrComparisonUnavailable
	}

	side := domain.Side(input.Side)
	if !side.IsValid() {
		return nil, LoadOutput{}, fmt.Errorf("%w: side must be primary or secondary, got %q", domain.ErrInvalidInput, input.Side)
	}

	artefact, err := loadArtefact(input.Path)
	if err != nil {
		return nil, LoadOutput{}, err
	}

	result, err := s.session.Load(ctx, side, artefact)
	if err != nil {
		return nil, LoadOutput{}, err
	}

	return nil, LoadOutput{
		Side:      side.String(),
		Levels:    result.Table.Levels(),
		Warnings:  warningStrings(result.Warnings),
		Ready:     s.session.Ready(),
		Identical: s.session.Identical(),
	}, nil
}

// handleBuildPrompt handles the build_comparison_prompt tool invocation.
func (s *Server) handleBuildPrompt(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PromptInput,
) (*mcp.CallToolResult, PromptOutput, error) {
	if s.session == nil {
		return nil, PromptOutput{}, ErrComparisonUnavailable
	}

	prompt, err := s.ports.Comparison.BuildPrompt(s.session, input.PrimaryLevel, input.SecondaryLevel)
	if err != nil {
		return nil, PromptOutput{}, err
	}

	return nil, PromptOutput{
		PrimaryLevel:   prompt.PrimaryLevel,
		SecondaryLevel: prompt.SecondaryLevel,
		System:         prompt.System,
		User:           prompt.User,
	}, nil
}

// handleScore handles the score_response tool invocation.
func (s *Server) handleScore(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ScoreInput,
) (*mcp.CallToolResult, ScoreOutput, error) {
	if s.session == nil {
		return nil, ScoreOutput{}, ErrComparisonUnavailable
	}

	result, err := s.ports.Comparison.Score(input.Response, input.Threshold)
	if err != nil {
		return nil, ScoreOutput{}, err
	}

	output := ScoreOutput{
		Score:       result.Score,
		Found:       result.Found,
		Band:        result.Band.String(),
		Description: result.Band.Description(),
	}

	if input.PrimaryLevel != "" && input.SecondaryLevel != "" {
		s.session.Record(domain.ComparisonRecord{
			PrimaryLevel:   input.PrimaryLevel,
			SecondaryLevel: input.SecondaryLevel,
			Result:         result,
			Response:       input.Response,
			Timestamp:      time.Now().UTC(),
		})
		output.Recorded = true
	}

	return nil, output, nil
}

// resolvePath converts a file:// URI from an MCP client to a local path.
// Bare paths pass through unchanged.
func resolvePath(uri string) string {
	return strings.TrimPrefix(strings.TrimSpace(uri), "file://")
}

func loadArtefact(path string) (*domain.Artefact, error) {
	path = resolvePath(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return domain.NewArtefact(path, content)
}

func warningStrings(warnings []domain.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}
