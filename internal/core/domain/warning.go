package domain

import "fmt"

// WarningKind classifies a non-fatal pipeline diagnostic.
type WarningKind string

// Warning kinds.
const (
	// WarningEmptyResult means the artefact produced no descriptors.
	WarningEmptyResult WarningKind = "empty_result"

	// WarningMalformedRow means a tabular row failed structural parsing and was skipped.
	WarningMalformedRow WarningKind = "malformed_row"

	// WarningStrategyFailed means one extraction strategy failed before another succeeded.
	WarningStrategyFailed WarningKind = "strategy_failed"
)

// Warning is a diagnostic attached to a pipeline result. It never aborts a run.
type Warning struct {
	Kind WarningKind `json:"kind"`

	// Row is the 1-based source line for malformed rows, zero otherwise.
	Row int `json:"row,omitempty"`

	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("%s (row %d): %s", w.Kind, w.Row, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}
