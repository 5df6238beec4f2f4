package extractors

import (
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
	"github.com/james-keevy/acqf-eqf-comparator/internal/extractors/pdfreader"
	"github.com/james-keevy/acqf-eqf-comparator/internal/extractors/pdftotext"
)

// RegisterDefaults registers all built-in strategies with the registry.
// Call this during application initialisation to enable standard strategies.
func RegisterDefaults(r *Registry) {
	r.Register(domain.StrategyPDFReader, buildPDFReader)
	r.Register(domain.StrategyPDFToText, buildPDFToText)
}

func buildPDFReader(_ map[string]any) (driven.TextExtractor, error) {
	return pdfreader.New(), nil
}

// buildPDFToText creates a pdftotext extractor from generic config.
// Supported config keys:
//   - path (string): pdftotext binary name or path (default: pdftotext)
func buildPDFToText(cfg map[string]any) (driven.TextExtractor, error) {
	var opts []pdftotext.Option

	if path := getStringFromConfig(cfg, "path"); path != "" {
		opts = append(opts, pdftotext.WithBinary(path))
	}

	return pdftotext.New(opts...), nil
}

// getStringFromConfig safely extracts a string from a generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	v, _ := cfg[key].(string)
	return v
}
