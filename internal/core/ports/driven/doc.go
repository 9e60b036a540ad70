// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileScanner: Enumerates document files under a root directory
//   - Extractor: Converts raw file bytes of one format into plain text
//   - ExtractorRegistry: Selects the extractor for a file
//   - KnowledgeStore: Persists and loads the knowledge-base cache
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or extractor package
package driven
