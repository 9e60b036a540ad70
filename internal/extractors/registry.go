package extractors

import (
	"sync"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches extraction over the closed format variant.
// One extractor per format; formats never overlap, so there is no
// priority ordering.
type Registry struct {
	mu         sync.RWMutex
	extractors map[domain.Format]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[domain.Format]driven.Extractor),
	}
}

// Register adds an extractor, replacing any previous one for the format.
func (r *Registry) Register(extractor driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[extractor.Format()] = extractor
}

// ExtractorFor returns the extractor for the given format.
func (r *Registry) ExtractorFor(format domain.Format) (driven.Extractor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	extractor, ok := r.extractors[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return extractor, nil
}
