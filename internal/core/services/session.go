package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driving"
)

// Ensure Session implements the interface.
var _ driving.Session = (*Session)(nil)

type slot struct {
	result *domain.PipelineResult
	err    error
	digest [sha256.Size]byte
}

// Session holds the two framework tables of one comparison workflow.
// It is owned by the caller and safe for concurrent use.
type Session struct {
	id       string
	pipeline driving.PipelineService

	mu      sync.RWMutex
	slots   map[domain.Side]*slot
	records []domain.ComparisonRecord
}

// NewSession creates an empty session that loads artefacts through pipeline.
func NewSession(pipeline driving.PipelineService) *Session {
	return &Session{
		id:       uuid.NewString(),
		pipeline: pipeline,
		slots:    make(map[domain.Side]*slot),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Load processes the artefact into the given side.
func (s *Session) Load(ctx context.Context, side domain.Side, artefact *domain.Artefact) (*domain.PipelineResult, error) {
	if !side.IsValid() {
		return nil, fmt.Errorf("%w: side %q", domain.ErrInvalidInput, side)
	}
	if s.pipeline == nil {
		return nil, errors.New("session: pipeline service not configured")
	}

	result, err := s.pipeline.Process(ctx, artefact)

	sl := &slot{result: result, err: err}
	if artefact != nil {
		sl.digest = sha256.Sum256(artefact.Content)
	}

	s.mu.Lock()
	s.slots[side] = sl
	s.mu.Unlock()

	return result, err
}

// Result returns the stored pipeline outcome for a side.
func (s *Session) Result(side domain.Side) (*domain.PipelineResult, error) {
	s.mu.RLock()
	sl, ok := s.slots[side]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s framework not loaded", domain.ErrNotFound, side)
	}
	if sl.err != nil {
		return nil, sl.err
	}
	return sl.result, nil
}

// Table returns the non-empty table for a side.
func (s *Session) Table(side domain.Side) (*domain.DescriptorTable, error) {
	result, err := s.Result(side)
	if err != nil {
		return nil, err
	}
	if result.Empty() {
		return nil, fmt.Errorf("%w: %s framework", domain.ErrEmptyResult, side)
	}
	return result.Table, nil
}

// Ready returns true when both sides hold non-empty tables.
func (s *Session) Ready() bool {
	for _, side := range []domain.Side{domain.SidePrimary, domain.SideSecondary} {
		if _, err := s.Table(side); err != nil {
			return false
		}
	}
	return true
}

// Identical returns true when both sides were loaded from the same bytes.
func (s *Session) Identical() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, pok := s.slots[domain.SidePrimary]
	q, qok := s.slots[domain.SideSecondary]
	if !pok || !qok || p.err != nil || q.err != nil {
		return false
	}
	return p.digest == q.digest
}

// Reset clears one side.
func (s *Session) Reset(side domain.Side) {
	s.mu.Lock()
	delete(s.slots, side)
	s.mu.Unlock()
}

// Record appends a scored comparison to the history.
func (s *Session) Record(record domain.ComparisonRecord) {
	s.mu.Lock()
	s.records = append(s.records, record)
	s.mu.Unlock()
}

// Records returns a copy of the history.
func (s *Session) Records() []domain.ComparisonRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}
