package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/james-keevy/acqf-eqf-comparator/internal/normalisers/csv"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Convert a descriptor file to CSV",
	Long: `Extracts the level descriptors of a file and writes them as a CSV with
Level, Domain and Descriptor columns. The output loads back to the same table.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	result, err := processFile(cmd.Context(), args[0], cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if exportOutput == "" {
		return csv.Write(cmd.OutOrStdout(), result.Table)
	}

	data, err := csv.Encode(result.Table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil { //nolint:gosec // export is meant to be shared
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}
	cmd.Printf("Wrote %d levels to %s\n", result.Table.Len(), exportOutput)
	return nil
}
