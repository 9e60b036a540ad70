package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies the source file format of a document.
// The set of formats is closed: every ingested file is exactly one of these.
type Format string

const (
	// FormatWord is a word-processor document (.docx).
	FormatWord Format = "word"

	// FormatXML is an XML document (.xml).
	FormatXML Format = "xml"

	// FormatPDF is a PDF document (.pdf).
	FormatPDF Format = "pdf"
)

// extensionFormats maps lowercased file extensions to formats.
var extensionFormats = map[string]Format{
	".docx": FormatWord,
	".xml":  FormatXML,
	".pdf":  FormatPDF,
}

// FormatForPath returns the format for a file path based on its extension.
// The extension match is case-insensitive. The second return value is false
// when the extension is not a supported document format.
func FormatForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensionFormats[ext]
	return format, ok
}

// IsSupportedFile reports whether the path has a supported document extension.
func IsSupportedFile(path string) bool {
	_, ok := FormatForPath(path)
	return ok
}

// SupportedExtensions returns the lowercased extensions ingested by the
// pipeline, sorted for deterministic output.
func SupportedExtensions() []string {
	return []string{".docx", ".pdf", ".xml"}
}

// String returns the canonical name of the format.
func (f Format) String() string {
	return string(f)
}
