package services

import (
	"context"
	"sort"
	"strings"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

// Ensure Query implements the interface.
var _ driving.QueryService = (*Query)(nil)

// snippetRadius is the number of content characters kept either side of
// the first query match when building a snippet.
const snippetRadius = 80

// Query answers questions over the knowledge base with linear filters.
// It reads through the Loader so the first query triggers initialisation.
type Query struct {
	loader *Loader
}

// NewQuery creates a query service over the given loader.
func NewQuery(loader *Loader) *Query {
	return &Query{loader: loader}
}

// SearchDocuments returns documents matching the query and category.
func (q *Query) SearchDocuments(ctx context.Context, query, category string, limit int) ([]driving.DocumentMatch, error) {
	kb, err := q.loader.Get(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matches []driving.DocumentMatch
	for _, doc := range kb.Documents {
		if category != "" && doc.Category != category {
			continue
		}
		match, snippet := matchDocument(&doc, needle)
		if !match {
			continue
		}
		matches = append(matches, driving.DocumentMatch{Document: doc, Snippet: snippet})
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

// Document returns the document with the exact filename.
func (q *Query) Document(ctx context.Context, filename string) (*domain.Document, error) {
	kb, err := q.loader.Get(ctx)
	if err != nil {
		return nil, err
	}

	for i := range kb.Documents {
		if kb.Documents[i].Filename == filename {
			doc := kb.Documents[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Endpoints returns mined endpoints, optionally filtered by category.
func (q *Query) Endpoints(ctx context.Context, category string) ([]domain.Endpoint, error) {
	kb, err := q.loader.Get(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" {
		return kb.Endpoints, nil
	}
	needle := strings.ToLower(category)
	var endpoints []domain.Endpoint
	for _, endpoint := range kb.Endpoints {
		if strings.Contains(strings.ToLower(endpoint.Category), needle) {
			endpoints = append(endpoints, endpoint)
		}
	}
	return endpoints, nil
}

// Examples returns samples, optionally filtered by operation and type.
func (q *Query) Examples(ctx context.Context, operation string, exampleType domain.ExampleType) ([]domain.Example, error) {
	kb, err := q.loader.Get(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(operation)
	var examples []domain.Example
	for _, example := range kb.Examples {
		if needle != "" && !strings.Contains(strings.ToLower(example.Operation), needle) {
			continue
		}
		if exampleType != "" && example.Type != exampleType {
			continue
		}
		examples = append(examples, example)
	}
	return examples, nil
}

// Rules returns validation rules, optionally filtered by keyword.
func (q *Query) Rules(ctx context.Context, keyword string) ([]domain.Rule, error) {
	kb, err := q.loader.Get(ctx)
	if err != nil {
		return nil, err
	}

	if keyword == "" {
		return kb.Rules, nil
	}
	needle := strings.ToLower(keyword)
	var rules []domain.Rule
	for _, rule := range kb.Rules {
		if strings.Contains(strings.ToLower(rule.Name), needle) {
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

// Categories returns distinct document categories with counts.
func (q *Query) Categories(ctx context.Context) ([]driving.CategoryCount, error) {
	kb, err := q.loader.Get(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, doc := range kb.Documents {
		counts[doc.Category]++
	}

	categories := make([]driving.CategoryCount, 0, len(counts))
	for category, count := range counts {
		categories = append(categories, driving.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})
	return categories, nil
}

// Stats returns collection sizes and cache provenance.
func (q *Query) Stats(ctx context.Context) (*driving.KnowledgeStats, error) {
	kb, err := q.loader.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &driving.KnowledgeStats{
		Stats:     kb.Stats(),
		FromCache: q.loader.FromCache(),
	}, nil
}

// matchDocument reports whether the document matches the lowercased needle
// and returns a content snippet when the match came from the content.
// An empty needle matches everything.
func matchDocument(doc *domain.Document, needle string) (bool, string) {
	if needle == "" {
		return true, ""
	}
	if strings.Contains(strings.ToLower(doc.Filename), needle) ||
		strings.Contains(strings.ToLower(doc.Title), needle) {
		return true, ""
	}
	idx := strings.Index(strings.ToLower(doc.Content), needle)
	if idx < 0 {
		return false, ""
	}
	return true, snippetAround(doc.Content, idx, len(needle))
}

// snippetAround extracts a single-line excerpt around a content match.
func snippetAround(content string, idx, matchLen int) string {
	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + snippetRadius
	if end > len(content) {
		end = len(content)
	}
	snippet := strings.Join(strings.Fields(content[start:end]), " ")
	return strings.TrimSpace(snippet)
}
