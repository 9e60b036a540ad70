package driven

import (
	"context"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// Extractor converts raw file bytes of a single format into plain text.
// Each extractor is independently fallible: an error never aborts the run,
// it only degrades the document's content to a placeholder.
type Extractor interface {
	// Format returns the document format this extractor handles.
	Format() domain.Format

	// Extract converts raw bytes into plain text.
	Extract(ctx context.Context, data []byte) (string, error)
}

// ExtractorRegistry dispatches over the closed format variant.
// It maintains one extractor per format; there is no priority ordering
// because formats never overlap.
type ExtractorRegistry interface {
	// Register adds an extractor to the registry. Registering a second
	// extractor for the same format replaces the first.
	Register(extractor Extractor)

	// ExtractorFor returns the extractor for the given format.
	// Returns domain.ErrUnsupportedFormat when none is registered.
	ExtractorFor(format domain.Format) (Extractor, error)
}
