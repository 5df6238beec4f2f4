package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driving"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

// Ensure ComparisonService implements the interfaces.
var (
	_ driving.ComparisonService = (*ComparisonService)(nil)
	_ driven.PromptStoreAware   = (*ComparisonService)(nil)
)

// comparePlaceholders is the number of %s verbs a compare template must carry.
const comparePlaceholders = 4

// defaultComparePrompt is the fallback prompt when no PromptStore is configured.
const defaultComparePrompt = `Compare the following qualification level descriptors and assess their equivalence.

Primary %s:
%s

Secondary %s:
%s

Compare the descriptors. Are these levels equivalent? Highlight similarities and differences.

Suggest the most appropriate Secondary level match.

Provide a similarity score out of 100. Write this as a separate score below your response.`

// defaultCompareSystemPrompt is the fallback system prompt when no PromptStore is configured.
const defaultCompareSystemPrompt = `You are an expert in qualifications frameworks and international education systems. ` +
	`You understand learning outcomes and domain-based comparisons.`

// scorePattern finds the first similarity score in a model response.
var scorePattern = regexp.MustCompile(`(?i)similarity score[^\d]*(\d{1,3})`)

// ComparisonService builds comparison prompts and bands model scores.
type ComparisonService struct {
	pipeline    driving.PipelineService
	normalizer  driven.LevelNormalizer
	settings    driving.SettingsService
	promptStore driven.PromptStore
}

// NewComparisonService creates a new comparison service.
// The normalizer and settings are optional.
func NewComparisonService(
	pipeline driving.PipelineService,
	normalizer driven.LevelNormalizer,
	settings driving.SettingsService,
) *ComparisonService {
	return &ComparisonService{
		pipeline:   pipeline,
		normalizer: normalizer,
		settings:   settings,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (s *ComparisonService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// NewSession starts an empty comparison session.
func (s *ComparisonService) NewSession() driving.Session {
	return NewSession(s.pipeline)
}

// BuildPrompt renders the comparison prompt for one level of each side.
func (s *ComparisonService) BuildPrompt(
	session driving.Session,
	primaryLevel, secondaryLevel string,
) (*domain.ComparisonPrompt, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: nil session", domain.ErrInvalidInput)
	}

	primary, err := session.Table(domain.SidePrimary)
	if err != nil {
		return nil, err
	}
	secondary, err := session.Table(domain.SideSecondary)
	if err != nil {
		return nil, err
	}

	pLevel := s.normalize(primaryLevel)
	if !primary.Has(pLevel) {
		return nil, fmt.Errorf("%w: %s in %s framework", domain.ErrNotFound, pLevel, domain.SidePrimary)
	}
	sLevel := s.normalize(secondaryLevel)
	if !secondary.Has(sLevel) {
		return nil, fmt.Errorf("%w: %s in %s framework", domain.ErrNotFound, sLevel, domain.SideSecondary)
	}

	template := s.loadPrompt(driven.PromptCompare, defaultComparePrompt)
	if !validTemplate(template) {
		logger.Warn("compare prompt needs exactly %d %%s placeholders and no other verbs (write %%%% for %%), using built-in prompt",
			comparePlaceholders)
		template = defaultComparePrompt
	}

	return &domain.ComparisonPrompt{
		PrimaryLevel:   pLevel,
		SecondaryLevel: sLevel,
		System:         s.loadPrompt(driven.PromptCompareSystem, defaultCompareSystemPrompt),
		User: fmt.Sprintf(template,
			pLevel, strings.Join(primary.Lines(pLevel), "\n"),
			sLevel, strings.Join(secondary.Lines(sLevel), "\n"),
		),
	}, nil
}

// validTemplate reports whether a compare template holds exactly the
// expected %s verbs and no other formatting directive besides %%.
func validTemplate(template string) bool {
	verbs := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		i++
		if i == len(template) {
			return false
		}
		switch template[i] {
		case '%':
		case 's':
			verbs++
		default:
			return false
		}
	}
	return verbs == comparePlaceholders
}

// Score extracts and bands the first similarity score in a response.
// A response without a score, or with one outside 0..100, yields Found false.
func (s *ComparisonService) Score(response string, threshold int) (domain.ScoreResult, error) {
	if threshold == 0 {
		threshold = s.highMatchThreshold()
	} else if err := domain.ValidateThreshold(threshold); err != nil {
		return domain.ScoreResult{}, err
	}

	unknown := domain.ScoreResult{Band: domain.MatchUnknown}

	m := scorePattern.FindStringSubmatch(response)
	if m == nil {
		return unknown, nil
	}
	score, err := strconv.Atoi(m[1])
	if err != nil || score > domain.MaxScore {
		logger.Debug("ignoring out of range similarity score %q", m[1])
		return unknown, nil
	}

	return domain.ScoreResult{
		Score: score,
		Found: true,
		Band:  domain.ClassifyScore(score, threshold),
	}, nil
}

func (s *ComparisonService) normalize(label string) string {
	if s.normalizer == nil {
		return strings.TrimSpace(label)
	}
	return s.normalizer.Normalize(label)
}

func (s *ComparisonService) highMatchThreshold() int {
	if s.settings == nil {
		return domain.DefaultHighMatchThreshold
	}
	settings, err := s.settings.Get()
	if err != nil {
		return domain.DefaultHighMatchThreshold
	}
	return settings.Compare.HighMatchThreshold
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (s *ComparisonService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		return fallback
	}
	return prompt
}
