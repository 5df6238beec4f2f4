// Command leveller extracts qualification level descriptors from CSV and PDF
// files and prepares level-by-level framework comparisons.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/james-keevy/acqf-eqf-comparator/internal/adapters/driven/config/file"
	"github.com/james-keevy/acqf-eqf-comparator/internal/adapters/driving/cli"
	"github.com/james-keevy/acqf-eqf-comparator/internal/aggregate"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/services"
	"github.com/james-keevy/acqf-eqf-comparator/internal/extractors"
	"github.com/james-keevy/acqf-eqf-comparator/internal/levels"
	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
	"github.com/james-keevy/acqf-eqf-comparator/internal/normalisers"
	"github.com/james-keevy/acqf-eqf-comparator/internal/normalisers/csv"
	"github.com/james-keevy/acqf-eqf-comparator/internal/normalisers/pdf"
	"github.com/james-keevy/acqf-eqf-comparator/internal/segmenter"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the pipeline from the settings stored in configDir.
func buildServices(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	seg, err := segmenter.New(settings.Dialect)
	if err != nil {
		return nil, fmt.Errorf("build segmenter: %w", err)
	}

	extractorRegistry := extractors.NewRegistry()
	extractors.RegisterDefaults(extractorRegistry)
	chain, err := extractorRegistry.BuildChain(settings.Extract)
	if err != nil {
		return nil, fmt.Errorf("build extraction chain: %w", err)
	}
	logger.Debug("extraction strategies: %v", chain.Names())

	normaliserRegistry := normalisers.NewRegistry(
		csv.New(),
		pdf.New(chain, seg),
	)

	normalizer := levels.NewNormalizer(settings.Dialect.OrdinalWords)
	pipeline := services.NewPipelineService(
		normaliserRegistry,
		aggregate.New(aggregate.WithNormalizer(normalizer)),
	)

	comparison := services.NewComparisonService(pipeline, normalizer, settingsService)
	prompts, err := file.NewPromptStore(filepath.Join(configDir, "prompts"))
	if err != nil {
		logger.Warn("using built-in prompts: %v", err)
	} else {
		logger.Debug("prompt templates: %s", prompts.Dir())
		comparison.SetPromptStore(prompts)
	}

	return &cli.Services{
		Pipeline:   pipeline,
		Comparison: comparison,
		Settings:   settingsService,
		Levels:     normalizer,
	}, nil
}
