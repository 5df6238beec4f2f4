// Package cli provides the leveller command line interface.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driving"
	"github.com/james-keevy/acqf-eqf-comparator/internal/levels"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

var version = "dev"

// Services bundles the driving ports the commands use.
type Services struct {
	Pipeline   driving.PipelineService
	Comparison driving.ComparisonService
	Settings   driving.SettingsService

	// Levels canonicalises level names typed on the command line. It
	// should match the normalizer the pipeline aggregates with.
	Levels driven.LevelNormalizer
}

// ServiceFactory builds services for a config directory. An empty dir means the default.
type ServiceFactory func(configDir string) (*Services, error)

var (
	pipelineService   driving.PipelineService
	comparisonService driving.ComparisonService
	settingsService   driving.SettingsService
	levelNormalizer   driven.LevelNormalizer

	serviceFactory ServiceFactory
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "leveller",
	Short: "Extract and compare qualification level descriptors",
	Long: `Leveller turns qualification framework level descriptors into a canonical
table of levels, learning domains and descriptor text.

Descriptors can be read from a CSV with Level, Domain and Descriptor columns
or from the free text of a PDF. Two frameworks can then be compared level by
level with a prompt suitable for a language model.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.leveller)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by all commands.
func SetServices(s *Services) {
	if s == nil {
		pipelineService, comparisonService, settingsService = nil, nil, nil
		levelNormalizer = nil
		return
	}
	pipelineService = s.Pipeline
	comparisonService = s.Comparison
	settingsService = s.Settings
	levelNormalizer = s.Levels
}

// normalizeLevel canonicalises a level typed by the user, with the default
// ordinal words when no normalizer was configured.
func normalizeLevel(label string) string {
	if levelNormalizer == nil {
		return levels.Normalize(label)
	}
	return levelNormalizer.Normalize(label)
}

// SetServiceFactory registers the constructor run once flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil || pipelineService != nil {
		return nil
	}
	services, err := serviceFactory(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

var (
	errPipelineNotConfigured   = errors.New("pipeline service not configured")
	errComparisonNotConfigured = errors.New("comparison service not configured")
	errSettingsNotConfigured   = errors.New("settings service not configured")
)
