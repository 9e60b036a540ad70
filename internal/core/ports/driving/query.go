package driving

import (
	"context"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// QueryService answers questions over the knowledge base.
// All queries are direct linear filters over the four collections;
// there is no query language.
type QueryService interface {
	// SearchDocuments returns documents whose filename, title or content
	// contains the query (case-insensitive), optionally restricted to a
	// category. An empty query matches every document.
	SearchDocuments(ctx context.Context, query, category string, limit int) ([]DocumentMatch, error)

	// Document returns the document with the exact filename.
	// Returns domain.ErrNotFound when absent.
	Document(ctx context.Context, filename string) (*domain.Document, error)

	// Endpoints returns mined endpoints, optionally filtered by category
	// substring. Multiset semantics and knowledge-base order are preserved.
	Endpoints(ctx context.Context, category string) ([]domain.Endpoint, error)

	// Examples returns request/response samples, optionally filtered by
	// operation and type.
	Examples(ctx context.Context, operation string, exampleType domain.ExampleType) ([]domain.Example, error)

	// Rules returns validation rules, optionally filtered by a keyword
	// contained in the rule text.
	Rules(ctx context.Context, keyword string) ([]domain.Rule, error)

	// Categories returns the distinct document categories with counts,
	// sorted by category name.
	Categories(ctx context.Context) ([]CategoryCount, error)

	// Stats returns collection sizes and cache provenance.
	Stats(ctx context.Context) (*KnowledgeStats, error)
}

// DocumentMatch is a document hit with a snippet around the first match.
type DocumentMatch struct {
	// Document is the matched document.
	Document domain.Document

	// Snippet is a short content excerpt around the first occurrence of
	// the query, empty when the query matched filename or title only.
	Snippet string
}

// CategoryCount pairs a category label with its document count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// KnowledgeStats reports collection sizes and where the knowledge base
// came from.
type KnowledgeStats struct {
	domain.Stats

	// FromCache is true when the knowledge base was loaded from the
	// persisted cache rather than built by a pipeline run.
	FromCache bool `json:"fromCache"`
}
