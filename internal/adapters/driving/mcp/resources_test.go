package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

func TestExtractFilename(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid document URI",
			uri:      "ddsdocs://documents/submit_guide.docx",
			expected: "submit_guide.docx",
		},
		{
			name:     "invalid prefix",
			uri:      "file://documents/submit_guide.docx",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractFilename(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns JSON document list", func(t *testing.T) {
		query := &mockQueryService{
			matches: []driving.DocumentMatch{
				{Document: domain.Document{
					Filename: "echo_request.xml",
					Title:    "echo_request",
					Category: "General",
					Format:   domain.FormatXML,
				}},
			},
		}
		server := newTestServer(t, query)

		result, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("ddsdocs://documents"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var infos []map[string]string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 1)
		assert.Equal(t, "echo_request.xml", infos[0]["filename"])
		assert.Equal(t, "xml", infos[0]["format"])
	})

	t.Run("propagates listing errors", func(t *testing.T) {
		server := newTestServer(t, &mockQueryService{err: errors.New("boom")})

		_, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("ddsdocs://documents"))
		assert.Error(t, err)
	})
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns document content", func(t *testing.T) {
		query := &mockQueryService{
			document: &domain.Document{
				Filename: "submit_guide.docx",
				Content:  "Call POST /api/v1/submit to send data.",
			},
		}
		server := newTestServer(t, query)

		result, err := server.handleDocumentContentResource(ctx,
			makeReadResourceRequest("ddsdocs://documents/submit_guide.docx"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "Call POST /api/v1/submit to send data.", result.Contents[0].Text)
	})

	t.Run("unknown document maps to resource not found", func(t *testing.T) {
		server := newTestServer(t, &mockQueryService{})

		_, err := server.handleDocumentContentResource(ctx,
			makeReadResourceRequest("ddsdocs://documents/absent.pdf"))
		assert.Error(t, err)
	})

	t.Run("malformed URI maps to resource not found", func(t *testing.T) {
		server := newTestServer(t, &mockQueryService{})

		_, err := server.handleDocumentContentResource(ctx,
			makeReadResourceRequest("bogus://nope"))
		assert.Error(t, err)
	})
}
