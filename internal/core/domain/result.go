package domain

// PipelineResult is the outcome of processing one artefact.
type PipelineResult struct {
	// Table is never nil; it may be empty.
	Table *DescriptorTable

	Warnings []Warning

	// Strategy names the extractor that produced the text, empty for tabular input.
	Strategy string

	// Records is the number of raw records fed to the aggregator.
	Records int
}

// Empty reports whether no descriptors were produced.
func (r *PipelineResult) Empty() bool {
	return r == nil || r.Table.Empty()
}

// Ready reports whether the result can take part in a comparison.
func (r *PipelineResult) Ready() bool {
	return !r.Empty()
}

// HasWarning reports whether a warning of the given kind was recorded.
func (r *PipelineResult) HasWarning(kind WarningKind) bool {
	if r == nil {
		return false
	}
	for _, w := range r.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
