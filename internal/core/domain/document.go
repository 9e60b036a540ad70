package domain

import "time"

// Document represents one ingested documentation file.
// It is created once during a pipeline run and never mutated afterwards.
type Document struct {
	// Filename is the base name of the source file. It is the unique key
	// for a document within a single pipeline run.
	Filename string `json:"filename"`

	// Title is the human-readable title derived from content or filename.
	Title string `json:"title"`

	// Content is the extracted plain text. It is never empty on a decoder
	// failure: extraction errors produce a placeholder string instead of
	// dropping the document.
	Content string `json:"content"`

	// Format is the source file format.
	Format Format `json:"format"`

	// Category is the label derived from the filename.
	Category string `json:"category"`

	// Metadata describes the source file on disk.
	Metadata FileMetadata `json:"metadata"`
}

// FileMetadata captures the on-disk attributes of a source file.
type FileMetadata struct {
	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Modified is the last-modified timestamp of the source file.
	Modified time.Time `json:"modified"`

	// Path is the absolute path the file was read from.
	Path string `json:"path"`
}

// FileRef is a discovered source file awaiting ingestion.
type FileRef struct {
	// Path is the absolute file path.
	Path string

	// Format is the document format implied by the extension.
	Format Format

	// Size is the file size in bytes at scan time.
	Size int64

	// Modified is the last-modified timestamp at scan time.
	Modified time.Time
}
