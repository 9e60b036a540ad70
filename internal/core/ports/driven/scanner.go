package driven

import (
	"context"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// FileScanner enumerates ingestible files under a document root.
type FileScanner interface {
	// Scan returns the supported files under root, recursing into
	// subdirectories, in deterministic (lexicographic) order.
	// A missing root yields an empty slice, not an error: ingestion
	// degrades to an empty knowledge base rather than failing startup.
	Scan(ctx context.Context, root string) ([]domain.FileRef, error)

	// Read returns the raw bytes of a previously scanned file.
	// Fails when the file disappeared between scan and read; the
	// pipeline treats that as a per-file catastrophic failure.
	Read(ctx context.Context, path string) ([]byte, error)

	// Watch emits the paths of changed supported files under root until
	// the context is cancelled. Used by watch mode to trigger rebuilds.
	Watch(ctx context.Context, root string) (<-chan string, error)
}
