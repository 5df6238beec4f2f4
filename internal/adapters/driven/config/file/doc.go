// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under the leveller config directory.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: Editable comparison prompt templates
package file
