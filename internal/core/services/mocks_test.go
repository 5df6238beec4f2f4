package services

import (
	"context"
	"errors"

	"github.com/james-keevy/acqf-eqf-comparator/internal/aggregate"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/normalisers"
	csvnorm "github.com/james-keevy/acqf-eqf-comparator/internal/normalisers/csv"
)

const primaryCSV = `Level,Domain,Descriptor
Level 1,Knowledge,basic facts
1,knowledge,simple ideas
Level 2,Skills,apply methods
`

const secondaryCSV = `Level,Domain,Descriptor
Level One,Knowledge,general knowledge
Level 2,Skills,cognitive skills
Level 2,Competence,work under supervision
`

func csvArtefact(name, content string) *domain.Artefact {
	return &domain.Artefact{Name: name, Format: domain.FormatCSV, Content: []byte(content)}
}

func newTestPipeline() *PipelineService {
	return NewPipelineService(normalisers.NewRegistry(csvnorm.New()), aggregate.New())
}

// mockRegistry returns a canned normalise result.
type mockRegistry struct {
	result *driven.NormaliseResult
	err    error
	calls  int
}

func (m *mockRegistry) Normalise(_ context.Context, _ *domain.Artefact) (*driven.NormaliseResult, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockRegistry) Register(_ driven.Normaliser) {}

func (m *mockRegistry) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatPDF}
}

// mockPromptStore serves prompts from a map.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	p, ok := m.prompts[name]
	if !ok {
		return "", errors.New("prompt not found")
	}
	return p, nil
}

func (m *mockPromptStore) Reload() {}
