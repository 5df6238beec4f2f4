package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

var (
	promptPrimaryLevel   string
	promptSecondaryLevel string
	promptSystem         bool
	promptJSON           bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt [primary-file] [secondary-file]",
	Short: "Build a level comparison prompt",
	Long: `Loads a primary and a secondary framework and renders the prompt that asks
a language model whether the selected levels are equivalent.

Levels may be given as numbers or words, e.g. --primary-level 4 or
--secondary-level "Level Four". The template is read from
compare.txt in the prompts directory when present.`,
	Args: cobra.ExactArgs(2),
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().StringVar(&promptPrimaryLevel, "primary-level", "", "level of the primary framework")
	promptCmd.Flags().StringVar(&promptSecondaryLevel, "secondary-level", "", "level of the secondary framework")
	promptCmd.Flags().BoolVar(&promptSystem, "system", false, "also print the system prompt")
	promptCmd.Flags().BoolVar(&promptJSON, "json", false, "output the prompt as JSON")
	_ = promptCmd.MarkFlagRequired("primary-level")
	_ = promptCmd.MarkFlagRequired("secondary-level")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errComparisonNotConfigured
	}

	session := comparisonService.NewSession()
	for i, side := range []domain.Side{domain.SidePrimary, domain.SideSecondary} {
		artefact, err := readArtefact(args[i])
		if err != nil {
			return err
		}
		result, err := session.Load(cmd.Context(), side, artefact)
		if err != nil {
			return fmt.Errorf("%s framework: %w", side, err)
		}
		printWarnings(cmd.ErrOrStderr(), result.Warnings)
	}

	if session.Identical() {
		fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render("warning: primary and secondary files are identical"))
	}

	prompt, err := comparisonService.BuildPrompt(session, promptPrimaryLevel, promptSecondaryLevel)
	if err != nil {
		return err
	}

	if promptJSON {
		data, err := json.MarshalIndent(prompt, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if promptSystem && prompt.System != "" {
		cmd.Println(prompt.System)
		cmd.Println()
	}
	cmd.Println(prompt.User)
	return nil
}
