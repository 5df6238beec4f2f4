// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Normaliser: Turns one artefact format into raw records
//   - NormaliserRegistry: Selects the normaliser for an artefact
//   - TextExtractor: Pulls plain text out of a paginated document
//   - ExtractionChain: Tries text extractors in configured order
//   - Aggregator: Groups raw records into a DescriptorTable
//   - LevelNormalizer: Canonicalises level labels
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ConfigStore: Application configuration. Without it, defaults apply.
//   - PromptStore: Prompt templates. Without it, built-in prompts are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
