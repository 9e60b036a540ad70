package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
)

// Ensure KnowledgeStore implements the interface.
var _ driven.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore persists the knowledge base as one JSON file.
type KnowledgeStore struct {
	path string
}

// NewKnowledgeStore creates a store backed by the given file path.
func NewKnowledgeStore(path string) *KnowledgeStore {
	return &KnowledgeStore{path: path}
}

// Path returns the cache file location.
func (s *KnowledgeStore) Path() string {
	return s.path
}

// Save writes the knowledge base as indented JSON, replacing any
// previous cache. Parent directories are created as needed.
func (s *KnowledgeStore) Save(_ context.Context, kb *domain.KnowledgeBase) error {
	data, err := json.MarshalIndent(kb, "", "  ")
	if err != nil {
		return fmt.Errorf("serialise knowledge base: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write cache %s: %w", s.path, err)
	}
	return nil
}

// Load reads a previously saved knowledge base. A missing file maps to
// domain.ErrNoCache; unparseable content is reported as-is so the caller
// can decide to rebuild.
func (s *KnowledgeStore) Load(_ context.Context) (*domain.KnowledgeBase, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, domain.ErrNoCache
	}
	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", s.path, err)
	}

	var kb domain.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse cache %s: %w", s.path, err)
	}
	return &kb, nil
}
