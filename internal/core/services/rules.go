package services

import (
	"regexp"
	"strings"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// ruleCueRes capture the remainder of a line after a rule cue word.
// The four passes run in order; overlapping matches all yield records.
var ruleCueRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)rule[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)validation[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)must[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)should[:\s]+([^\n]+)`),
}

// ExtractRules mines business/validation rules from a document.
// Only documents categorised "Validation Rules" qualify. Name and
// Description both carry the identical trimmed captured text.
func ExtractRules(doc *domain.Document) []domain.Rule {
	if doc.Category != CategoryValidationRules {
		return nil
	}

	var rules []domain.Rule
	for _, re := range ruleCueRes {
		for _, m := range re.FindAllStringSubmatch(doc.Content, -1) {
			text := strings.TrimSpace(m[1])
			if text == "" {
				continue
			}
			rules = append(rules, domain.Rule{
				Name:        text,
				Description: text,
				Category:    domain.RuleCategory,
				Source:      doc.Filename,
			})
		}
	}
	return rules
}
