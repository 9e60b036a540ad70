package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_documentation tool.
type SearchInput struct {
	Query    string `json:"query" jsonschema:"text to find in document filenames, titles or content"`
	Category string `json:"category,omitempty" jsonschema:"restrict matches to a document category"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_documentation tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Snippet  string `json:"snippet,omitempty"`
}

// EndpointsInput is the input schema for the get_endpoints tool.
type EndpointsInput struct {
	Category string `json:"category,omitempty" jsonschema:"filter endpoints whose category contains this text"`
}

// EndpointsOutput is the output schema for the get_endpoints tool.
type EndpointsOutput struct {
	Endpoints []domain.Endpoint `json:"endpoints"`
	Count     int               `json:"count"`
}

// ExamplesInput is the input schema for the get_examples tool.
type ExamplesInput struct {
	Operation string `json:"operation,omitempty" jsonschema:"filter by DDS operation, e.g. SubmitDDS or RetractDDS"`
	Type      string `json:"type,omitempty" jsonschema:"filter by sample type: request or response"`
}

// ExamplesOutput is the output schema for the get_examples tool.
type ExamplesOutput struct {
	Examples []domain.Example `json:"examples"`
	Count    int              `json:"count"`
}

// RulesInput is the input schema for the get_rules tool.
type RulesInput struct {
	Keyword string `json:"keyword,omitempty" jsonschema:"filter rules containing this keyword"`
}

// RulesOutput is the output schema for the get_rules tool.
type RulesOutput struct {
	Rules []domain.Rule `json:"rules"`
	Count int           `json:"count"`
}

// CategoriesInput is the (empty) input schema for the list_categories tool.
type CategoriesInput struct{}

// CategoriesOutput is the output schema for the list_categories tool.
type CategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
}

// CategoryOutput pairs a category with its document count.
type CategoryOutput struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documentation",
		Description: "Search the ingested API documentation by text",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_endpoints",
		Description: "List API endpoints mined from the documentation",
	}, s.handleEndpoints)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_examples",
		Description: "List request/response samples for DDS operations",
	}, s.handleExamples)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_rules",
		Description: "List validation rules mined from the documentation",
	}, s.handleRules)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List document categories with counts",
	}, s.handleCategories)
}

// handleSearch handles the search_documentation tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	matches, err := s.ports.Query.SearchDocuments(ctx, input.Query, input.Category, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(matches)),
		Count:   len(matches),
	}
	for i := range matches {
		output.Results[i] = SearchResultOutput{
			Filename: matches[i].Document.Filename,
			Title:    matches[i].Document.Title,
			Category: matches[i].Document.Category,
			Snippet:  matches[i].Snippet,
		}
	}

	return nil, output, nil
}

// handleEndpoints handles the get_endpoints tool invocation.
func (s *Server) handleEndpoints(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EndpointsInput,
) (*mcp.CallToolResult, EndpointsOutput, error) {
	endpoints, err := s.ports.Query.Endpoints(ctx, input.Category)
	if err != nil {
		return nil, EndpointsOutput{}, err
	}
	return nil, EndpointsOutput{Endpoints: endpoints, Count: len(endpoints)}, nil
}

// handleExamples handles the get_examples tool invocation.
func (s *Server) handleExamples(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExamplesInput,
) (*mcp.CallToolResult, ExamplesOutput, error) {
	examples, err := s.ports.Query.Examples(ctx, input.Operation, domain.ExampleType(input.Type))
	if err != nil {
		return nil, ExamplesOutput{}, err
	}
	return nil, ExamplesOutput{Examples: examples, Count: len(examples)}, nil
}

// handleRules handles the get_rules tool invocation.
func (s *Server) handleRules(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RulesInput,
) (*mcp.CallToolResult, RulesOutput, error) {
	rules, err := s.ports.Query.Rules(ctx, input.Keyword)
	if err != nil {
		return nil, RulesOutput{}, err
	}
	return nil, RulesOutput{Rules: rules, Count: len(rules)}, nil
}

// handleCategories handles the list_categories tool invocation.
func (s *Server) handleCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CategoriesInput,
) (*mcp.CallToolResult, CategoriesOutput, error) {
	categories, err := s.ports.Query.Categories(ctx)
	if err != nil {
		return nil, CategoriesOutput{}, err
	}

	output := CategoriesOutput{Categories: make([]CategoryOutput, len(categories))}
	for i, c := range categories {
		output.Categories[i] = CategoryOutput{Category: c.Category, Count: c.Count}
	}
	return nil, output, nil
}
