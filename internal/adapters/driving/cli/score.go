package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

var (
	scoreThreshold int
	scoreJSON      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [file|-]",
	Short: "Read the similarity score from a model response",
	Long: `Finds the first "similarity score" in a language model response and bands it:

  High      at or above the threshold (default 80, see config show)
  Moderate  50 up to the threshold
  Low       below 50

The response is read from the file, or from stdin when the file is - or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().IntVarP(&scoreThreshold, "threshold", "t", 0, "High match threshold, 50-100 (0 = configured value)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output the score as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errComparisonNotConfigured
	}

	response, err := readResponse(cmd, args)
	if err != nil {
		return err
	}

	result, err := comparisonService.Score(response, scoreThreshold)
	if err != nil {
		return err
	}

	if scoreJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if !result.Found {
		cmd.Println("No similarity score found.")
		return nil
	}

	cmd.Printf("Similarity Score: %d/%d\n", result.Score, domain.MaxScore)
	cmd.Println(bandStyle(result.Band).Render(result.Band.Description()))
	return nil
}

func readResponse(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
