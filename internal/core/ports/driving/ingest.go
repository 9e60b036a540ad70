package driving

import (
	"context"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// IngestService drives the document ingestion pipeline.
type IngestService interface {
	// ProcessAll runs discovery, extraction, classification and structured
	// extraction over the document root and returns the complete knowledge
	// base. Per-file failures degrade or skip individual documents; the
	// run itself always succeeds with best-effort output.
	ProcessAll(ctx context.Context) (*domain.KnowledgeBase, error)

	// Status returns the outcome of the most recent run.
	Status() *IngestStatus
}

// IngestStatus describes the most recent pipeline run.
type IngestStatus struct {
	// RunID uniquely identifies the run in logs.
	RunID string

	// FilesDiscovered is the number of supported files found.
	FilesDiscovered int

	// DocumentsProcessed is the number of documents added to the
	// knowledge base, including degraded ones.
	DocumentsProcessed int

	// FilesSkipped counts files dropped at the per-file error boundary.
	FilesSkipped int
}
