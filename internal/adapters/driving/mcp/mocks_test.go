package mcp

import (
	"context"
	"fmt"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driving"
)

func testTable() *domain.DescriptorTable {
	return domain.NewDescriptorTable("table-1", "acqf.csv", []domain.TableEntry{
		{Level: "Level 1", Domain: "Knowledge", Descriptor: "basic facts"},
		{Level: "Level 2", Domain: "Knowledge", Descriptor: "broad facts"},
		{Level: "Level 2", Domain: "Skills", Descriptor: "apply methods"},
	})
}

// mockPipelineService is a mock implementation of driving.PipelineService.
type mockPipelineService struct {
	result *domain.PipelineResult
	err    error
	calls  int
}

func (m *mockPipelineService) Process(_ context.Context, artefact *domain.Artefact) (*domain.PipelineResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if err := artefact.Validate(); err != nil {
		return nil, err
	}
	return m.result, nil
}

func (m *mockPipelineService) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatCSV, domain.FormatPDF}
}

// mockSession is a mock implementation of driving.Session.
type mockSession struct {
	pipeline driving.PipelineService
	results  map[domain.Side]*domain.PipelineResult
	records  []domain.ComparisonRecord
}

func newMockSession(pipeline driving.PipelineService) *mockSession {
	return &mockSession{pipeline: pipeline, results: make(map[domain.Side]*domain.PipelineResult)}
}

func (m *mockSession) ID() string { return "session-1" }

func (m *mockSession) Load(ctx context.Context, side domain.Side, artefact *domain.Artefact) (*domain.PipelineResult, error) {
	result, err := m.pipeline.Process(ctx, artefact)
	if err != nil {
		return nil, err
	}
	m.results[side] = result
	return result, nil
}

func (m *mockSession) Result(side domain.Side) (*domain.PipelineResult, error) {
	r, ok := m.results[side]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, side)
	}
	return r, nil
}

func (m *mockSession) Table(side domain.Side) (*domain.DescriptorTable, error) {
	r, err := m.Result(side)
	if err != nil {
		return nil, err
	}
	return r.Table, nil
}

func (m *mockSession) Ready() bool { return len(m.results) == 2 }

func (m *mockSession) Identical() bool { return false }

func (m *mockSession) Reset(side domain.Side) { delete(m.results, side) }

func (m *mockSession) Record(record domain.ComparisonRecord) {
	m.records = append(m.records, record)
}

func (m *mockSession) Records() []domain.ComparisonRecord { return m.records }

// mockComparisonService is a mock implementation of driving.ComparisonService.
type mockComparisonService struct {
	session *mockSession
	prompt  *domain.ComparisonPrompt
	score   domain.ScoreResult
	err     error
}

func (m *mockComparisonService) NewSession() driving.Session {
	return m.session
}

func (m *mockComparisonService) BuildPrompt(
	session driving.Session,
	primaryLevel, secondaryLevel string,
) (*domain.ComparisonPrompt, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !session.Ready() {
		return nil, domain.ErrNotFound
	}
	return m.prompt, nil
}

func (m *mockComparisonService) Score(_ string, _ int) (domain.ScoreResult, error) {
	return m.score, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) SetHighMatchThreshold(_ int) error { return m.err }

func (m *mockSettingsService) SetDialect(_ domain.Dialect) error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) Path() string { return ":memory:" }
