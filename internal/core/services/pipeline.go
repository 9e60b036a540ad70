package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
	"github.com/tracedocs/ddsdocs-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.IngestService = (*Pipeline)(nil)

// Pipeline orchestrates the ingestion run: discovery, per-format text
// extraction, classification, structured extraction and aggregation.
// Documents are processed one at a time in discovery order; the knowledge
// base is exclusively owned by the pipeline until the run completes.
type Pipeline struct {
	root     string
	scanner  driven.FileScanner
	registry driven.ExtractorRegistry

	mu     sync.RWMutex
	status driving.IngestStatus
}

// NewPipeline creates a new ingestion pipeline over the given document root.
func NewPipeline(root string, scanner driven.FileScanner, registry driven.ExtractorRegistry) *Pipeline {
	return &Pipeline{
		root:     root,
		scanner:  scanner,
		registry: registry,
	}
}

// ProcessAll runs the full pipeline and returns the complete knowledge base.
// Per-file extraction failures degrade the document's content to a
// placeholder; files that cannot be read at all are skipped with a log line.
// The run itself only fails on cancellation or a discovery error.
func (p *Pipeline) ProcessAll(ctx context.Context) (*domain.KnowledgeBase, error) {
	runID := uuid.New().String()
	logger.Section("Ingestion run " + runID)

	files, err := p.scanner.Scan(ctx, p.root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", p.root, err)
	}
	logger.Info("Discovered %d supported files under %s", len(files), p.root)

	status := driving.IngestStatus{
		RunID:           runID,
		FilesDiscovered: len(files),
	}
	kb := domain.NewKnowledgeBase()

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := p.processFile(ctx, file)
		if err != nil {
			logger.Warn("Skipping %s: %v", file.Path, err)
			status.FilesSkipped++
			continue
		}

		kb.Documents = append(kb.Documents, *doc)
		kb.Endpoints = append(kb.Endpoints, ExtractEndpoints(doc.Content, doc.Category, doc.Filename)...)
		if example := ExtractExample(doc); example != nil {
			kb.Examples = append(kb.Examples, *example)
		}
		kb.Rules = append(kb.Rules, ExtractRules(doc)...)
		status.DocumentsProcessed++
	}

	p.setStatus(status)
	stats := kb.Stats()
	logger.Info("Ingestion complete: %d documents, %d endpoints, %d examples, %d rules (%d skipped)",
		stats.Documents, stats.Endpoints, stats.Examples, stats.Rules, status.FilesSkipped)
	return kb, nil
}

// Status returns the outcome of the most recent run.
func (p *Pipeline) Status() *driving.IngestStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	status := p.status
	return &status
}

func (p *Pipeline) setStatus(status driving.IngestStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
}

// processFile turns one discovered file into a document. Extraction
// failures never drop the document: the content becomes a placeholder and
// the document still flows through classification and structured
// extraction. Only a read failure or a decoder panic skips the file.
func (p *Pipeline) processFile(ctx context.Context, file domain.FileRef) (doc *domain.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()

	data, err := p.scanner.Read(ctx, file.Path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	extractor, err := p.registry.ExtractorFor(file.Format)
	if err != nil {
		return nil, err
	}

	content, err := extractor.Extract(ctx, data)
	if err != nil {
		logger.Debug("Extraction failed for %s: %v", file.Path, err)
		content = fmt.Sprintf("Error processing %s: %s", file.Format, file.Path)
	}

	filename := filepath.Base(file.Path)
	return &domain.Document{
		Filename: filename,
		Title:    DeriveTitle(content, filename),
		Content:  content,
		Format:   file.Format,
		Category: DeriveCategory(filename),
		Metadata: domain.FileMetadata{
			Size:     file.Size,
			Modified: file.Modified,
			Path:     file.Path,
		},
	}, nil
}
