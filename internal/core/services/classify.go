package services

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Title derivation markers, tried in order; first match wins.
var (
	markdownTitleRe   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	prefixedTitleRe   = regexp.MustCompile(`(?m)^Title:\s*(.+)$`)
	underlinedTitleRe = regexp.MustCompile(`(?m)^(.+)\r?\n={3,}\s*$`)
)

// DeriveTitle extracts a human-readable title from document content,
// falling back to the filename with its extension stripped.
func DeriveTitle(content, filename string) string {
	for _, re := range []*regexp.Regexp{markdownTitleRe, prefixedTitleRe, underlinedTitleRe} {
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

// categoryRule maps a filename keyword to a category label.
type categoryRule struct {
	keyword  string
	category string
}

// categoryRules is the fixed precedence order for category derivation.
// A filename matching several keywords resolves to the earliest entry.
var categoryRules = []categoryRule{
	{"cf1", "Basic Connectivity"},
	{"cf2", "Submit DDS"},
	{"cf3", "Retrieve DDS Status"},
	{"cf4", "Error Conditions"},
	{"cf5", "Amend DDS"},
	{"cf6", "Retract DDS"},
	{"cf7", "Retrieve Referenced DDS"},
	{"validation", "Validation Rules"},
	{"specification", "API Specifications"},
	{"development", "Development Options"},
	{"geojson", "GeoJSON"},
	{"python", "Python Examples"},
	{"request", "Request Examples"},
	{"response", "Response Examples"},
}

// CategoryValidationRules is the category whose documents feed rule mining.
const CategoryValidationRules = "Validation Rules"

// DeriveCategory maps a filename to its category label via case-insensitive
// substring matching, first match wins. Unmatched filenames are "General".
func DeriveCategory(filename string) string {
	lower := strings.ToLower(filename)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return "General"
}
