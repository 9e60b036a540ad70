package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
	"github.com/tracedocs/ddsdocs-cli/internal/logger"
)

// Loader owns the process-wide knowledge base reference. The first caller
// triggers either a cache load or a full pipeline run; every later caller
// reuses the same effectively read-only knowledge base. Rebuild swaps the
// reference, which only watch mode uses.
type Loader struct {
	pipeline driving.IngestService
	store    driven.KnowledgeStore

	mu        sync.RWMutex
	kb        *domain.KnowledgeBase
	fromCache bool
}

// NewLoader creates a loader over the given pipeline and cache store.
func NewLoader(pipeline driving.IngestService, store driven.KnowledgeStore) *Loader {
	return &Loader{
		pipeline: pipeline,
		store:    store,
	}
}

// Get returns the knowledge base, initialising it on first call.
// A present cache skips the pipeline entirely. A malformed cache is logged
// and falls back to a full run, so a corrupt file never blocks startup.
func (l *Loader) Get(ctx context.Context) (*domain.KnowledgeBase, error) {
	l.mu.RLock()
	if l.kb != nil {
		kb := l.kb
		l.mu.RUnlock()
		return kb, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.kb != nil {
		return l.kb, nil
	}

	if kb, err := l.store.Load(ctx); err == nil {
		logger.Info("Loaded knowledge base from cache (%d documents)", len(kb.Documents))
		l.kb = kb
		l.fromCache = true
		return kb, nil
	} else if !errors.Is(err, domain.ErrNoCache) {
		logger.Warn("Ignoring malformed cache: %v", err)
	}

	kb, err := l.build(ctx)
	if err != nil {
		return nil, err
	}
	l.kb = kb
	l.fromCache = false
	return kb, nil
}

// Rebuild re-runs the pipeline and swaps the shared reference.
// Used by watch mode when source documents change.
func (l *Loader) Rebuild(ctx context.Context) error {
	kb, err := l.build(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.kb = kb
	l.fromCache = false
	return nil
}

// FromCache reports whether the current knowledge base was loaded from the
// persisted cache. False until the first Get.
func (l *Loader) FromCache() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fromCache
}

// build runs the pipeline and persists the result. A save failure is
// logged, not fatal: the in-memory knowledge base is still served.
func (l *Loader) build(ctx context.Context) (*domain.KnowledgeBase, error) {
	kb, err := l.pipeline.ProcessAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("process documents: %w", err)
	}
	if err := l.store.Save(ctx, kb); err != nil {
		logger.Warn("Failed to save knowledge cache: %v", err)
	}
	return kb, nil
}
