package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

func queryOver(kb *domain.KnowledgeBase) *Query {
	return NewQuery(NewLoader(&fakeIngest{kb: kb}, &fakeStore{kb: kb}))
}

func queryKB() *domain.KnowledgeBase {
	kb := domain.NewKnowledgeBase()
	kb.Documents = append(kb.Documents,
		domain.Document{
			Filename: "cf2_submit_guide.docx",
			Title:    "Submit Guide",
			Content:  "The submission endpoint accepts a due diligence statement payload.",
			Format:   domain.FormatWord,
			Category: "Submit DDS",
		},
		domain.Document{
			Filename: "validation_rules.docx",
			Title:    "Validation Rules",
			Content:  "Rule: Geolocation must include at least one point.",
			Format:   domain.FormatWord,
			Category: "Validation Rules",
		},
		domain.Document{
			Filename: "cf3_status.docx",
			Title:    "Status Retrieval",
			Content:  "GET /api/v1/status returns the statement processing state.",
			Format:   domain.FormatWord,
			Category: "Retrieve DDS Status",
		},
	)
	kb.Endpoints = append(kb.Endpoints,
		domain.Endpoint{Name: "Submit DDS - submit", URL: "/api/v1/submit", Method: "POST", Category: "Submit DDS", Source: "cf2_submit_guide.docx"},
		domain.Endpoint{Name: "Retrieve DDS Status - status", URL: "/api/v1/status", Method: "GET", Category: "Retrieve DDS Status", Source: "cf3_status.docx"},
		domain.Endpoint{Name: "Retrieve DDS Status - status", URL: "/api/v1/status", Method: "GET", Category: "Retrieve DDS Status", Source: "cf3_status.docx"},
	)
	kb.Examples = append(kb.Examples,
		domain.Example{Name: "submit req", Type: domain.ExampleRequest, Operation: "SubmitDDS", Source: "submit_request.xml"},
		domain.Example{Name: "submit resp", Type: domain.ExampleResponse, Operation: "SubmitDDS", Source: "submit_response.xml"},
		domain.Example{Name: "echo req", Type: domain.ExampleRequest, Operation: "EchoService", Source: "echo_request.xml"},
	)
	kb.Rules = append(kb.Rules,
		domain.Rule{Name: "Geolocation must include at least one point.", Description: "Geolocation must include at least one point.", Category: domain.RuleCategory, Source: "validation_rules.docx"},
		domain.Rule{Name: "Commodity codes follow the harmonised system.", Description: "Commodity codes follow the harmonised system.", Category: domain.RuleCategory, Source: "validation_rules.docx"},
	)
	return kb
}

func TestQuery_SearchDocuments(t *testing.T) {
	q := queryOver(queryKB())
	ctx := context.Background()

	t.Run("matches content case-insensitively with snippet", func(t *testing.T) {
		matches, err := q.SearchDocuments(ctx, "DILIGENCE", "", 0)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "cf2_submit_guide.docx", matches[0].Document.Filename)
		assert.Contains(t, matches[0].Snippet, "diligence")
	})

	t.Run("matches title without snippet", func(t *testing.T) {
		matches, err := q.SearchDocuments(ctx, "Status Retrieval", "", 0)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Empty(t, matches[0].Snippet)
	})

	t.Run("category filter", func(t *testing.T) {
		matches, err := q.SearchDocuments(ctx, "", "Validation Rules", 0)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "validation_rules.docx", matches[0].Document.Filename)
	})

	t.Run("empty query matches all in order", func(t *testing.T) {
		matches, err := q.SearchDocuments(ctx, "", "", 0)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "cf2_submit_guide.docx", matches[0].Document.Filename)
	})

	t.Run("limit caps results", func(t *testing.T) {
		matches, err := q.SearchDocuments(ctx, "", "", 2)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("no match", func(t *testing.T) {
		matches, err := q.SearchDocuments(ctx, "nonexistent needle", "", 0)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestQuery_Document(t *testing.T) {
	q := queryOver(queryKB())

	doc, err := q.Document(context.Background(), "validation_rules.docx")
	require.NoError(t, err)
	assert.Equal(t, "Validation Rules", doc.Title)

	_, err = q.Document(context.Background(), "missing.docx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_Endpoints(t *testing.T) {
	q := queryOver(queryKB())

	t.Run("all endpoints preserve multiset order", func(t *testing.T) {
		endpoints, err := q.Endpoints(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, endpoints, 3)
		assert.Equal(t, "/api/v1/submit", endpoints[0].URL)
	})

	t.Run("category substring filter", func(t *testing.T) {
		endpoints, err := q.Endpoints(context.Background(), "retrieve")
		require.NoError(t, err)
		assert.Len(t, endpoints, 2)
	})
}

func TestQuery_Examples(t *testing.T) {
	q := queryOver(queryKB())
	ctx := context.Background()

	examples, err := q.Examples(ctx, "submitdds", "")
	require.NoError(t, err)
	assert.Len(t, examples, 2)

	examples, err = q.Examples(ctx, "submitdds", domain.ExampleRequest)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "submit req", examples[0].Name)

	examples, err = q.Examples(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, examples, 3)
}

func TestQuery_Rules(t *testing.T) {
	q := queryOver(queryKB())

	rules, err := q.Rules(context.Background(), "geolocation")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Contains(t, rules[0].Name, "Geolocation")

	rules, err = q.Rules(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}

func TestQuery_Categories(t *testing.T) {
	q := queryOver(queryKB())

	categories, err := q.Categories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 3)
	// Sorted by category name.
	assert.Equal(t, "Retrieve DDS Status", categories[0].Category)
	assert.Equal(t, "Submit DDS", categories[1].Category)
	assert.Equal(t, "Validation Rules", categories[2].Category)
	assert.Equal(t, 1, categories[0].Count)
}

func TestQuery_Stats(t *testing.T) {
	q := queryOver(queryKB())

	stats, err := q.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Documents)
	assert.Equal(t, 3, stats.Endpoints)
	assert.Equal(t, 3, stats.Examples)
	assert.Equal(t, 2, stats.Rules)
	assert.True(t, stats.FromCache)
}
