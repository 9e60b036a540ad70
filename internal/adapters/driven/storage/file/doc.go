// Package file provides the file-backed knowledge store. The knowledge
// base is persisted as a single pretty-printed JSON document, which is
// the system's only durable artifact.
package file
