package driven

import (
	"context"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// KnowledgeStore persists the knowledge base between runs.
// The file-backed implementation is the system's sole durable artifact.
type KnowledgeStore interface {
	// Save serialises the knowledge base, overwriting unconditionally.
	Save(ctx context.Context, kb *domain.KnowledgeBase) error

	// Load deserialises a previously saved knowledge base.
	// Returns domain.ErrNoCache when nothing has been saved yet.
	// A malformed cache propagates as an error; the caller decides
	// whether to fall back to a full pipeline run.
	Load(ctx context.Context) (*domain.KnowledgeBase, error)
}
