// Package services implements the driving port interfaces.
// Services contain the core business logic: the ingestion pipeline,
// the classification and mining heuristics, and the query filters.
//
// The heuristics are deliberately shallow regex passes over extracted
// text. They over-generate and do not deduplicate; that behaviour is
// the contract, not an accident to be fixed with a real parser.
//
// Services are pure Go with no CGO or external dependencies.
package services
