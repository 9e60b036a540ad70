// Package pdf extracts the text layer from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	pdfreader "github.com/ledongthuc/pdf"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles .pdf documents. It renders each page's text layer in
// page order, joining the page's text fragments with single spaces and
// ending each page with a newline. Layout and columns are not
// reconstructed; the flattening is deliberately lossy.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the document format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatPDF
}

// Extract renders the text fragments of every page in page order,
// space-separated within a page, one newline per page.
// The underlying decoder panics on some malformed inputs; those are
// converted into ordinary errors so a bad file degrades the document
// instead of killing the run.
func (e *Extractor) Extract(_ context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("decode pdf: %v", r)
		}
	}()

	reader, err := pdfreader.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= reader.NumPage(); pageNr++ {
		page := reader.Page(pageNr)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		fragments := make([]string, 0, len(content.Text))
		for _, fragment := range content.Text {
			fragments = append(fragments, fragment.S)
		}
		sb.WriteString(strings.Join(fragments, " "))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
