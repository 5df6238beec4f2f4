package services

import (
	"fmt"
	"maps"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driving"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDialectName        = "dialect.name"
	keyDomainNames        = "dialect.domain_names"
	keyLevelKeywords      = "dialect.level_keywords"
	keyOrdinalWords       = "dialect.ordinal_words"
	keyLeadIns            = "dialect.lead_ins"
	keyStrategies         = "extract.strategies"
	keyPDFToTextPath      = "extract.pdftotext_path"
	keyHighMatchThreshold = "compare.high_match_threshold"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Stored values override defaults; invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Dialect: domain.Dialect{
			Name:          s.getString(keyDialectName, defaults.Dialect.Name),
			LevelKeywords: s.getStrings(keyLevelKeywords, defaults.Dialect.LevelKeywords),
			DomainNames:   s.getStrings(keyDomainNames, defaults.Dialect.DomainNames),
			OrdinalWords:  s.getStrings(keyOrdinalWords, defaults.Dialect.OrdinalWords),
			LeadIns:       s.getStrings(keyLeadIns, defaults.Dialect.LeadIns),
		},
		Extract: domain.ExtractConfig{
			Strategies:      s.getStrings(keyStrategies, defaults.Extract.Strategies),
			StrategyConfigs: maps.Clone(defaults.Extract.StrategyConfigs),
		},
		Compare: domain.CompareSettings{
			HighMatchThreshold: s.getInt(keyHighMatchThreshold, defaults.Compare.HighMatchThreshold),
		},
	}

	if path := s.configStore.GetString(keyPDFToTextPath); path != "" {
		settings.Extract.StrategyConfigs[domain.StrategyPDFToText] = map[string]any{"path": path}
	}

	if err := settings.Dialect.Validate(); err != nil {
		logger.Warn("ignoring configured dialect: %v", err)
		settings.Dialect = defaults.Dialect
	}
	if err := domain.ValidateThreshold(settings.Compare.HighMatchThreshold); err != nil {
		logger.Warn("ignoring configured threshold: %v", err)
		settings.Compare.HighMatchThreshold = defaults.Compare.HighMatchThreshold
	}

	return settings, nil
}

// SetHighMatchThreshold updates the High match threshold.
func (s *SettingsService) SetHighMatchThreshold(threshold int) error {
	if err := domain.ValidateThreshold(threshold); err != nil {
		return err
	}
	if s.configStore == nil {
		return fmt.Errorf("save high match threshold: config store not configured")
	}
	if err := s.configStore.Set(keyHighMatchThreshold, threshold); err != nil {
		return fmt.Errorf("save high match threshold: %w", err)
	}
	return nil
}

// SetDialect stores the segmentation vocabulary.
func (s *SettingsService) SetDialect(dialect domain.Dialect) error {
	if err := dialect.Validate(); err != nil {
		return err
	}
	if s.configStore == nil {
		return fmt.Errorf("save dialect: config store not configured")
	}

	values := []struct {
		key   string
		value any
	}{
		{keyDialectName, dialect.Name},
		{keyLevelKeywords, dialect.LevelKeywords},
		{keyDomainNames, dialect.DomainNames},
		{keyOrdinalWords, dialect.OrdinalWords},
		{keyLeadIns, dialect.LeadIns},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the config file path, or empty when settings are not persisted.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}
