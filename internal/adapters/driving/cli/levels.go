package cli

import (
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [file]",
	Short: "List the levels found in a file",
	Long:  `Prints the canonical level keys of a descriptor file in ascending order, one per line.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) error {
	result, err := processFile(cmd.Context(), args[0], cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	for _, level := range result.Table.Levels() {
		cmd.Println(level)
	}
	return nil
}
