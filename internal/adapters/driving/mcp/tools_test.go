package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newComparisonServer(t *testing.T) (*Server, *mockComparisonService) {
	t.Helper()
	pipeline := &mockPipelineService{result: &domain.PipelineResult{Table: testTable(), Records: 3}}
	comparison := &mockComparisonService{
		session: newMockSession(pipeline),
		prompt: &domain.ComparisonPrompt{
			PrimaryLevel:   "Level 1",
			SecondaryLevel: "Level 2",
			System:         "system text",
			User:           "Primary Level 1:\nKnowledge: basic facts",
		},
		score: domain.ScoreResult{Score: 85, Found: true, Band: domain.MatchHigh},
	}
	server, err := NewServer(&Ports{Pipeline: pipeline, Comparison: comparison})
	require.NoError(t, err)
	return server, comparison
}

func TestServer_handleExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("returns levels and lines", func(t *testing.T) {
		pipeline := &mockPipelineService{result: &domain.PipelineResult{
			Table:    testTable(),
			Strategy: "pdfreader",
			Warnings: []domain.Warning{{Kind: domain.WarningStrategyFailed, Message: "pdftotext: not found"}},
		}}
		server, err := NewServer(&Ports{Pipeline: pipeline})
		require.NoError(t, err)

		path := writeFile(t, "acqf.csv", "Level,Domain,Descriptor\n")
		_, output, err := server.handleExtract(ctx, nil, ExtractInput{Path: path})

		require.NoError(t, err)
		assert.Equal(t, "acqf.csv", output.Source)
		assert.Equal(t, "pdfreader", output.Strategy)
		require.Len(t, output.Levels, 2)
		assert.Equal(t, "Level 1", output.Levels[0].Level)
		assert.Equal(t, []string{"Knowledge: broad facts", "Skills: apply methods"}, output.Levels[1].Lines)
		assert.Equal(t, []string{"strategy_failed: pdftotext: not found"}, output.Warnings)
	})

	t.Run("missing path", func(t *testing.T) {
		server, err := NewServer(&Ports{Pipeline: &mockPipelineService{}})
		require.NoError(t, err)

		_, _, err = server.handleExtract(ctx, nil, ExtractInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unreadable file", func(t *testing.T) {
		server, err := NewServer(&Ports{Pipeline: &mockPipelineService{}})
		require.NoError(t, err)

		_, _, err = server.handleExtract(ctx, nil, ExtractInput{Path: filepath.Join(t.TempDir(), "missing.csv")})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		pipeline := &mockPipelineService{}
		server, err := NewServer(&Ports{Pipeline: pipeline})
		require.NoError(t, err)

		_, _, err = server.handleExtract(ctx, nil, ExtractInput{Path: writeFile(t, "levels.docx", "x")})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
		assert.Zero(t, pipeline.calls)
	})

	t.Run("returns error on pipeline failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Pipeline: &mockPipelineService{err: errors.New("pipeline failed")}})
		require.NoError(t, err)

		_, _, err = server.handleExtract(ctx, nil, ExtractInput{Path: writeFile(t, "a.csv", "x")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pipeline failed")
	})
}

func TestServer_handleLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("loads both sides", func(t *testing.T) {
		server, _ := newComparisonServer(t)
		path := writeFile(t, "acqf.csv", "x")

		_, output, err := server.handleLoad(ctx, nil, LoadInput{Side: "primary", Path: path})
		require.NoError(t, err)
		assert.Equal(t, "primary", output.Side)
		assert.Equal(t, []string{"Level 1", "Level 2"}, output.Levels)
		assert.False(t, output.Ready)

		_, output, err = server.handleLoad(ctx, nil, LoadInput{Side: "secondary", Path: path})
		require.NoError(t, err)
		assert.True(t, output.Ready)
	})

	t.Run("invalid side", func(t *testing.T) {
		server, _ := newComparisonServer(t)

		_, _, err := server.handleLoad(ctx, nil, LoadInput{Side: "left", Path: writeFile(t, "a.csv", "x")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("comparison unavailable", func(t *testing.T) {
		server, err := NewServer(&Ports{Pipeline: &mockPipelineService{}})
		require.NoError(t, err)

		_, _, err = server.handleLoad(ctx, nil, LoadInput{Side: "primary", Path: "a.csv"})
		assert.ErrorIs(t, err, ErrComparisonUnavailable)
	})
}

func TestServer_handleBuildPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("requires both sides", func(t *testing.T) {
		server, _ := newComparisonServer(t)

		_, _, err := server.handleBuildPrompt(ctx, nil, PromptInput{PrimaryLevel: "1", SecondaryLevel: "2"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returns prompt", func(t *testing.T) {
		server, _ := newComparisonServer(t)
		path := writeFile(t, "acqf.csv", "x")
		for _, side := range []string{"primary", "secondary"} {
			_, _, err := server.handleLoad(ctx, nil, LoadInput{Side: side, Path: path})
			require.NoError(t, err)
		}

		_, output, err := server.handleBuildPrompt(ctx, nil, PromptInput{PrimaryLevel: "1", SecondaryLevel: "2"})

		require.NoError(t, err)
		assert.Equal(t, "Level 1", output.PrimaryLevel)
		assert.Equal(t, "Level 2", output.SecondaryLevel)
		assert.Equal(t, "system text", output.System)
		assert.Contains(t, output.User, "Knowledge: basic facts")
	})
}

func TestServer_handleScore(t *testing.T) {
	ctx := context.Background()

	t.Run("bands without recording", func(t *testing.T) {
		server, comparison := newComparisonServer(t)

		_, output, err := server.handleScore(ctx, nil, ScoreInput{Response: "Similarity Score: 85"})

		require.NoError(t, err)
		assert.Equal(t, 85, output.Score)
		assert.True(t, output.Found)
		assert.Equal(t, "high", output.Band)
		assert.Equal(t, "High Match", output.Description)
		assert.False(t, output.Recorded)
		assert.Empty(t, comparison.session.records)
	})

	t.Run("records when levels given", func(t *testing.T) {
		server, comparison := newComparisonServer(t)

		_, output, err := server.handleScore(ctx, nil, ScoreInput{
			Response:       "Similarity Score: 85",
			PrimaryLevel:   "Level 1",
			SecondaryLevel: "Level 2",
		})

		require.NoError(t, err)
		assert.True(t, output.Recorded)
		require.Len(t, comparison.session.records, 1)
		record := comparison.session.records[0]
		assert.Equal(t, "Level 1", record.PrimaryLevel)
		assert.Equal(t, "Similarity Score: 85", record.Response)
		assert.False(t, record.Timestamp.IsZero())
	})

	t.Run("returns error on invalid threshold", func(t *testing.T) {
		server, comparison := newComparisonServer(t)
		comparison.err = domain.ErrInvalidInput

		_, _, err := server.handleScore(ctx, nil, ScoreInput{Response: "x", Threshold: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestWarningStrings(t *testing.T) {
	assert.Nil(t, warningStrings(nil))
	assert.Equal(t,
		[]string{"malformed_row (row 3): wrong number of fields"},
		warningStrings([]domain.Warning{{Kind: domain.WarningMalformedRow, Row: 3, Message: "wrong number of fields"}}),
	)
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{name: "file uri", uri: "file:///tmp/acqf.csv", want: "/tmp/acqf.csv"},
		{name: "bare path", uri: "/tmp/acqf.csv", want: "/tmp/acqf.csv"},
		{name: "relative path", uri: "docs/eqf.pdf", want: "docs/eqf.pdf"},
		{name: "surrounding space", uri: "  file:///tmp/a.csv ", want: "/tmp/a.csv"},
		{name: "empty", uri: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePath(tt.uri))
		})
	}
}

func TestLoadArtefact_FileURI(t *testing.T) {
	path := writeFile(t, "acqf.csv", "Level,Domain,Descriptor\n")

	artefact, err := loadArtefact("file://" + path)

	require.NoError(t, err)
	assert.Equal(t, "acqf.csv", artefact.Name)
	assert.Equal(t, domain.FormatCSV, artefact.Format)
}
