package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

var (
	parseJSON  bool
	parseLevel string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract level descriptors from a file",
	Long: `Reads a CSV or PDF level descriptor file and prints the canonical table:
every level in order with one "Domain: Descriptor" line per learning domain.

Files that yield no descriptors print a warning rather than failing.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the table as JSON")
	parseCmd.Flags().StringVarP(&parseLevel, "level", "l", "", "only show this level (e.g. 4 or \"Level Four\")")
	rootCmd.AddCommand(parseCmd)
}

// parseOutput is the JSON shape of the parse command.
type parseOutput struct {
	Table    *domain.DescriptorTable `json:"table"`
	Strategy string                  `json:"strategy,omitempty"`
	Records  int                     `json:"records"`
	Warnings []domain.Warning        `json:"warnings"`
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := processFile(cmd.Context(), args[0], cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	selected := result.Table.Levels()
	if parseLevel != "" {
		level := normalizeLevel(parseLevel)
		if !result.Table.Has(level) {
			return fmt.Errorf("%w: %s in %s", domain.ErrNotFound, level, args[0])
		}
		selected = []string{level}
	}

	if parseJSON {
		table := result.Table
		if parseLevel != "" {
			table = filterTable(table, selected[0])
		}
		warnings := result.Warnings
		if warnings == nil {
			warnings = []domain.Warning{}
		}
		data, err := json.MarshalIndent(parseOutput{
			Table:    table,
			Strategy: result.Strategy,
			Records:  result.Records,
			Warnings: warnings,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.Empty() {
		cmd.Println("No level descriptors found.")
		return nil
	}

	for i, level := range selected {
		if i > 0 {
			cmd.Println()
		}
		printLevel(cmd, result.Table, level)
	}

	if result.Strategy != "" {
		cmd.Println()
		cmd.Println(mutedStyle.Render("extracted with " + result.Strategy))
	}
	return nil
}

func printLevel(cmd *cobra.Command, table *domain.DescriptorTable, level string) {
	cmd.Println(headingStyle.Render(level))
	for _, d := range table.Domains(level) {
		text, _ := table.Descriptor(level, d)
		cmd.Printf("  %s %s\n", domainStyle.Render(d+":"), strings.ReplaceAll(text, "\n", "\n    "))
	}
}

// filterTable returns a table holding a single level of t.
func filterTable(t *domain.DescriptorTable, level string) *domain.DescriptorTable {
	var entries []domain.TableEntry
	for _, e := range t.Entries() {
		if e.Level == level {
			entries = append(entries, e)
		}
	}
	return domain.NewDescriptorTable(t.ID, t.Source, entries)
}
