// Package domain defines the core entities of the descriptor pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Artefact: An uploaded descriptor document and its declared format
//   - RawRecord: One (level, domain, descriptor) triple before aggregation
//   - DescriptorTable: The canonical Level -> Domain -> Descriptor structure
//   - Dialect: The vocabulary a framework's documents are written in
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
