package services

import (
	"strings"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// operationKeyword maps a filename keyword to a DDS operation name.
type operationKeyword struct {
	keyword   string
	operation string
}

// operationKeywords is the fixed vocabulary for operation inference,
// checked in order against the lowercased filename.
var operationKeywords = []operationKeyword{
	{"echo", "EchoService"},
	{"submit", "SubmitDDS"},
	{"retrieve", "RetrieveDDS"},
	{"amend", "AmendDDS"},
	{"retract", "RetractDDS"},
	{"statement", "GetStatement"},
}

// UnknownOperation is assigned when no vocabulary keyword matches.
const UnknownOperation = "Unknown"

// ExtractExample derives a request/response sample from a document.
// Only XML documents whose filename contains "request" or "response"
// qualify; "request" is checked first. All other documents yield nil.
func ExtractExample(doc *domain.Document) *domain.Example {
	if doc.Format != domain.FormatXML {
		return nil
	}

	lower := strings.ToLower(doc.Filename)
	var exampleType domain.ExampleType
	switch {
	case strings.Contains(lower, "request"):
		exampleType = domain.ExampleRequest
	case strings.Contains(lower, "response"):
		exampleType = domain.ExampleResponse
	default:
		return nil
	}

	return &domain.Example{
		Name:      doc.Title,
		Type:      exampleType,
		Content:   doc.Content,
		Operation: inferOperation(lower),
		Source:    doc.Filename,
	}
}

// inferOperation matches the lowercased filename against the operation
// vocabulary, first match wins.
func inferOperation(lowerFilename string) string {
	for _, op := range operationKeywords {
		if strings.Contains(lowerFilename, op.keyword) {
			return op.operation
		}
	}
	return UnknownOperation
}
