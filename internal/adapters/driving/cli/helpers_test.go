package cli

import (
	"context"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

// fakeQueryService is a canned-answer driving.QueryService for command tests.
type fakeQueryService struct {
	matches    []driving.DocumentMatch
	document   *domain.Document
	endpoints  []domain.Endpoint
	examples   []domain.Example
	rules      []domain.Rule
	categories []driving.CategoryCount
	stats      *driving.KnowledgeStats
	err        error
}

var _ driving.QueryService = (*fakeQueryService)(nil)

func (f *fakeQueryService) SearchDocuments(_ context.Context, _, _ string, _ int) ([]driving.DocumentMatch, error) {
	return f.matches, f.err
}

func (f *fakeQueryService) Document(_ context.Context, _ string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.document == nil {
		return nil, domain.ErrNotFound
	}
	return f.document, nil
}

func (f *fakeQueryService) Endpoints(_ context.Context, _ string) ([]domain.Endpoint, error) {
	return f.endpoints, f.err
}

func (f *fakeQueryService) Examples(_ context.Context, _ string, _ domain.ExampleType) ([]domain.Example, error) {
	return f.examples, f.err
}

func (f *fakeQueryService) Rules(_ context.Context, _ string) ([]domain.Rule, error) {
	return f.rules, f.err
}

func (f *fakeQueryService) Categories(_ context.Context) ([]driving.CategoryCount, error) {
	return f.categories, f.err
}

func (f *fakeQueryService) Stats(_ context.Context) (*driving.KnowledgeStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stats != nil {
		return f.stats, nil
	}
	return &driving.KnowledgeStats{}, nil
}

// fakeIngestService is a canned driving.IngestService for command tests.
type fakeIngestService struct {
	kb     *domain.KnowledgeBase
	status driving.IngestStatus
	err    error
	runs   int
}

var _ driving.IngestService = (*fakeIngestService)(nil)

func (f *fakeIngestService) ProcessAll(_ context.Context) (*domain.KnowledgeBase, error) {
	f.runs++
	if f.err != nil {
		return nil, f.err
	}
	if f.kb != nil {
		return f.kb, nil
	}
	return domain.NewKnowledgeBase(), nil
}

func (f *fakeIngestService) Status() *driving.IngestStatus {
	status := f.status
	return &status
}

// setupTestServices injects fakes into the package-level services and
// returns a cleanup that restores the unwired state.
func setupTestServices() func() {
	return setupTestServicesWith(&fakeQueryService{
		matches: []driving.DocumentMatch{
			{
				Document: domain.Document{
					Filename: "submit_guide.docx",
					Title:    "Submit Guide",
					Category: "General",
					Format:   domain.FormatWord,
				},
				Snippet: "Call POST /api/v1/submit to send data.",
			},
		},
	}, &fakeIngestService{})
}

func setupTestServicesWith(query driving.QueryService, ingest driving.IngestService) func() {
	queryService = query
	ingestService = ingest
	return func() {
		queryService = nil
		ingestService = nil
		loader = nil
		configStore = nil
		fileScanner = nil
	}
}
