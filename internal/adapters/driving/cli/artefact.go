package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

// readArtefact loads a descriptor file, taking the format from its extension.
func readArtefact(path string) (*domain.Artefact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return domain.NewArtefact(path, content)
}

// processFile runs one file through the pipeline and reports its warnings.
func processFile(ctx context.Context, path string, warnings io.Writer) (*domain.PipelineResult, error) {
	if pipelineService == nil {
		return nil, errPipelineNotConfigured
	}

	artefact, err := readArtefact(path)
	if err != nil {
		return nil, err
	}

	result, err := pipelineService.Process(ctx, artefact)
	if err != nil {
		return nil, err
	}

	printWarnings(warnings, result.Warnings)
	return result, nil
}

func printWarnings(w io.Writer, warnings []domain.Warning) {
	for _, warning := range warnings {
		fmt.Fprintln(w, warningStyle.Render("warning: "+warning.String()))
	}
}
