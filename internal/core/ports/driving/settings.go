package driving

import "github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, stored values over defaults.
	Get() (*domain.AppSettings, error)

	// SetHighMatchThreshold updates the score at or above which a match is High.
	SetHighMatchThreshold(threshold int) error

	// SetDialect stores the segmentation vocabulary.
	SetDialect(dialect domain.Dialect) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are persisted.
	Path() string
}
