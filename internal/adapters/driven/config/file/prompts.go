package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore reads comparison prompts from <dir>/<name>.txt.
// The directory and any missing prompt files are written on first Load,
// so constructing a store does no I/O.
type PromptStore struct {
	mu        sync.Mutex
	promptDir string
	cache     map[string]string
	seeded    bool
	seedErr   error
}

// DefaultPrompts seeds new prompt files and stands in for unreadable ones.
// The compare template takes primary level, primary descriptors, secondary
// level and secondary descriptors as four %s verbs; a literal percent sign
// is written %%.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var DefaultPrompts = map[string]string{
	driven.PromptCompare: `Compare the following qualification level descriptors and assess their equivalence.

Primary %s:
%s

Secondary %s:
%s

Compare the descriptors. Are these levels equivalent? Highlight similarities and differences.

Suggest the most appropriate Secondary level match.

Provide a similarity score out of 100. Write this as a separate score below your response.`,

	driven.PromptCompareSystem: `You are an expert in qualifications frameworks and international education systems. You understand learning outcomes and domain-based comparisons.`,
}

// NewPromptStore creates a prompt store rooted at promptDir.
// An empty promptDir means ~/.leveller/prompts.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		promptDir = filepath.Join(dir, "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the named prompt, reading its file once until Reload.
// An unreadable file, or a directory that cannot be created, yields the
// embedded default; names without a default are an error then.
func (s *PromptStore) Load(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.seedErr = s.seed()
		s.seeded = true
	}

	if prompt, ok := s.cache[name]; ok {
		return prompt, nil
	}

	prompt, err := s.read(name)
	if err != nil {
		if fallback, ok := DefaultPrompts[name]; ok {
			return fallback, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	s.cache[name] = prompt
	return prompt, nil
}

// Reload drops cached prompts so edited files are picked up.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// seed creates the prompt directory and writes defaults that are missing.
// Existing files are left alone.
func (s *PromptStore) seed() error {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}

	for name, content := range DefaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			continue
		}
		if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
			return fmt.Errorf("create default prompt %q: %w", name, err)
		}
	}
	return nil
}

func (s *PromptStore) read(name string) (string, error) {
	if s.seedErr != nil {
		return "", s.seedErr
	}
	data, err := os.ReadFile(filepath.Join(s.promptDir, name+".txt"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
