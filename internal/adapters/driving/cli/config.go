package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/extractors/pdftotext"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change leveller configuration.

Settings live in config.toml under the config directory (default ~/.leveller).
Prompt templates live in the prompts directory next to it.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configThresholdCmd = &cobra.Command{
	Use:   "threshold [score]",
	Short: "Set the High match threshold",
	Long:  `Scores at or above the threshold are a High match. Accepts 50 to 100.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigThreshold,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configThresholdCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(headingStyle.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[Dialect]")
	cmd.Printf("  Name: %s\n", settings.Dialect.Name)
	cmd.Printf("  Level keywords: %s\n", strings.Join(settings.Dialect.LevelKeywords, ", "))
	cmd.Printf("  Domain names: %s\n", strings.Join(settings.Dialect.DomainNames, ", "))
	cmd.Printf("  Ordinal words: %s\n", strings.Join(settings.Dialect.OrdinalWords, ", "))
	cmd.Printf("  Lead-ins: %s\n", strings.Join(settings.Dialect.LeadIns, ", "))
	cmd.Println()

	cmd.Println("[Extract]")
	cmd.Printf("  Strategies: %s\n", strings.Join(settings.Extract.Strategies, ", "))
	for _, name := range settings.Extract.Strategies {
		for key, value := range settings.Extract.GetStrategyConfig(name) {
			cmd.Printf("  %s.%s: %v\n", name, key, value)
		}
		if name == domain.StrategyPDFToText {
			printPDFToTextStatus(cmd, settings.Extract.GetStrategyConfig(name))
		}
	}
	cmd.Println()

	cmd.Println("[Compare]")
	cmd.Printf("  High match threshold: %d\n", settings.Compare.HighMatchThreshold)
	cmd.Println()

	cmd.Println(mutedStyle.Render("Config file: " + settingsService.Path()))
	return nil
}

func printPDFToTextStatus(cmd *cobra.Command, cfg map[string]any) {
	binary, _ := cfg["path"].(string)
	if err := pdftotext.CheckAvailable(binary); err != nil {
		cmd.Println("  " + warningStyle.Render("pdftotext: not installed"))
		cmd.Println("  " + mutedStyle.Render(pdftotext.InstallInstructions()))
		return
	}
	cmd.Println("  pdftotext: available")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	cmd.Println(settingsService.Path())
	return nil
}

func runConfigThreshold(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	threshold, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid threshold %q: %w", args[0], err)
	}
	if err := settingsService.SetHighMatchThreshold(threshold); err != nil {
		return err
	}

	cmd.Printf("High match threshold set to %d\n", threshold)
	return nil
}
