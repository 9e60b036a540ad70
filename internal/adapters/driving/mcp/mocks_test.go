package mcp

import (
	"context"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	matches    []driving.DocumentMatch
	document   *domain.Document
	endpoints  []domain.Endpoint
	examples   []domain.Example
	rules      []domain.Rule
	categories []driving.CategoryCount
	stats      *driving.KnowledgeStats
	err        error

	// lastQuery records the arguments of the most recent SearchDocuments call.
	lastQuery    string
	lastCategory string
	lastLimit    int
}

var _ driving.QueryService = (*mockQueryService)(nil)

func (m *mockQueryService) SearchDocuments(_ context.Context, query, category string, limit int) ([]driving.DocumentMatch, error) {
	m.lastQuery = query
	m.lastCategory = category
	m.lastLimit = limit
	return m.matches, m.err
}

func (m *mockQueryService) Document(_ context.Context, _ string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.document == nil {
		return nil, domain.ErrNotFound
	}
	return m.document, nil
}

func (m *mockQueryService) Endpoints(_ context.Context, _ string) ([]domain.Endpoint, error) {
	return m.endpoints, m.err
}

func (m *mockQueryService) Examples(_ context.Context, _ string, _ domain.ExampleType) ([]domain.Example, error) {
	return m.examples, m.err
}

func (m *mockQueryService) Rules(_ context.Context, _ string) ([]domain.Rule, error) {
	return m.rules, m.err
}

func (m *mockQueryService) Categories(_ context.Context) ([]driving.CategoryCount, error) {
	return m.categories, m.err
}

func (m *mockQueryService) Stats(_ context.Context) (*driving.KnowledgeStats, error) {
	return m.stats, m.err
}
