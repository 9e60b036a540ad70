// Package domain defines the core business entities for ddsdocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An ingested documentation file with extracted text
//   - Endpoint: A candidate API operation mined from document text
//   - Example: A request/response sample derived from an XML document
//   - Rule: A business/validation rule mined from validation documents
//   - KnowledgeBase: The aggregate of all four collections
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
