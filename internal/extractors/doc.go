// Package extractors provides implementations of the Extractor interface
// for the closed set of ingestible document formats. Each extractor knows
// how to turn the raw bytes of one format into plain text.
//
// Extractors are registered with the ExtractorRegistry at startup.
package extractors
