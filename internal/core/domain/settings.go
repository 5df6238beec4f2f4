package domain

import "fmt"

// Extraction strategy names.
const (
	StrategyPDFReader = "pdfreader"
	StrategyPDFToText = "pdftotext"
)

// ExtractConfig holds the text extraction chain configuration.
// Uses generic map-based config so new strategies can be added
// without modifying this struct.
type ExtractConfig struct {
	// Strategies is the ordered list of strategy names to try.
	Strategies []string

	// StrategyConfigs holds per-strategy configuration as generic maps.
	// Key is strategy name, value is strategy-specific config.
	StrategyConfigs map[string]map[string]any
}

// GetStrategyConfig returns config for a specific strategy, or nil if not set.
func (c *ExtractConfig) GetStrategyConfig(name string) map[string]any {
	if c.StrategyConfigs == nil {
		return nil
	}
	return c.StrategyConfigs[name]
}

// DefaultExtractConfig returns the default extraction chain.
// The pure-Go reader needs no external tools; pdftotext is the fallback.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		Strategies: []string{StrategyPDFReader, StrategyPDFToText},
		StrategyConfigs: map[string]map[string]any{
			StrategyPDFToText: {
				"path": "pdftotext",
			},
		},
	}
}

// CompareSettings holds comparison behaviour configuration.
type CompareSettings struct {
	// HighMatchThreshold is the score at or above which a match is High.
	HighMatchThreshold int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Dialect Dialect
	Extract ExtractConfig
	Compare CompareSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dialect: DefaultDialect(),
		Extract: DefaultExtractConfig(),
		Compare: CompareSettings{
			HighMatchThreshold: DefaultHighMatchThreshold,
		},
	}
}

// ValidateThreshold checks a High threshold lies within the configurable range.
func ValidateThreshold(threshold int) error {
	if threshold < MinHighMatchThreshold || threshold > MaxScore {
		return fmt.Errorf("%w: high match threshold %d outside %d..%d",
			ErrInvalidInput, threshold, MinHighMatchThreshold, MaxScore)
	}
	return nil
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	if err := s.Dialect.Validate(); err != nil {
		return err
	}
	return ValidateThreshold(s.Compare.HighMatchThreshold)
}
