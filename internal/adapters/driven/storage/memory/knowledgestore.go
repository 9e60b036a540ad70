package memory

import (
	"context"
	"sync"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
)

// Ensure KnowledgeStore implements the interface.
var _ driven.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore holds the knowledge base in memory for the lifetime of
// the process. Used when no cache path is configured.
type KnowledgeStore struct {
	mu sync.RWMutex
	kb *domain.KnowledgeBase
}

// NewKnowledgeStore creates a new in-memory knowledge store.
func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{}
}

// Save keeps a reference to the knowledge base, replacing any previous one.
func (s *KnowledgeStore) Save(_ context.Context, kb *domain.KnowledgeBase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kb = kb
	return nil
}

// Load returns the stored knowledge base, or domain.ErrNoCache when
// nothing has been saved.
func (s *KnowledgeStore) Load(_ context.Context) (*domain.KnowledgeBase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kb == nil {
		return nil, domain.ErrNoCache
	}
	return s.kb, nil
}
