// Package xmldoc extracts text from XML documents by re-serialising the
// parsed tree as pretty-printed JSON.
package xmldoc

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/beevik/etree"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles .xml documents. Well-formed XML is parsed into a
// generic tree and rendered as indented JSON; anything that fails to parse
// is returned verbatim as raw text, so this extractor never fails a
// document.
type Extractor struct{}

// New creates a new XML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the document format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatXML
}

// Extract converts XML bytes into pretty-printed JSON text, falling back
// to the raw file text on any parse or serialisation failure.
func (e *Extractor) Extract(_ context.Context, data []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return string(data), nil
	}
	root := doc.Root()
	if root == nil {
		return string(data), nil
	}

	tree := map[string]any{root.Tag: elementValue(root)}
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return string(data), nil
	}
	return string(out), nil
}

// elementValue converts an element into a generic JSON value. Attributes
// become "@key" entries, character data becomes "#text" (or a bare string
// for leaf elements), and repeated child tags collapse into arrays.
// encoding/json sorts map keys, so the output is deterministic.
func elementValue(element *etree.Element) any {
	obj := make(map[string]any)
	for _, attr := range element.Attr {
		obj["@"+attr.Key] = attr.Value
	}

	childValues := make(map[string][]any)
	var childOrder []string
	for _, child := range element.ChildElements() {
		if _, seen := childValues[child.Tag]; !seen {
			childOrder = append(childOrder, child.Tag)
		}
		childValues[child.Tag] = append(childValues[child.Tag], elementValue(child))
	}
	for _, tag := range childOrder {
		values := childValues[tag]
		if len(values) == 1 {
			obj[tag] = values[0]
		} else {
			obj[tag] = values
		}
	}

	text := strings.TrimSpace(element.Text())
	if len(obj) == 0 {
		return text
	}
	if text != "" {
		obj["#text"] = text
	}
	return obj
}
