package services

import (
	"regexp"
	"strings"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

// The three endpoint heuristics. Each pass runs independently over the full
// text; a URL mentioned three ways yields three records.
var (
	verbURLRe     = regexp.MustCompile(`(?i)\b(GET|POST|PUT|DELETE)\s+(\S+)`)
	endpointKeyRe = regexp.MustCompile(`(?i)endpoint:\s*(\S+)`)
	urlKeyRe      = regexp.MustCompile(`(?i)url:\s*(\S+)`)
)

// httpVerbs used when resolving the method for a matched token.
const httpVerbPattern = `(?i)\b(GET|POST|PUT|DELETE)\s+`

// ExtractEndpoints mines candidate API operations from a document's text.
// Matches that do not contain a path separator are discarded; everything
// else is kept without deduplication.
func ExtractEndpoints(text, category, source string) []domain.Endpoint {
	var endpoints []domain.Endpoint

	var tokens []string
	for _, m := range verbURLRe.FindAllStringSubmatch(text, -1) {
		tokens = append(tokens, m[2])
	}
	for _, m := range endpointKeyRe.FindAllStringSubmatch(text, -1) {
		tokens = append(tokens, m[1])
	}
	for _, m := range urlKeyRe.FindAllStringSubmatch(text, -1) {
		tokens = append(tokens, m[1])
	}

	lines := strings.Split(text, "\n")
	for _, token := range tokens {
		if !strings.Contains(token, "/") {
			continue
		}
		endpoints = append(endpoints, domain.Endpoint{
			Name:        category + " - " + lastPathSegment(token),
			Description: describeEndpoint(lines, token),
			Method:      resolveMethod(text, token),
			URL:         token,
			Category:    category,
			Source:      source,
		})
	}

	return endpoints
}

// lastPathSegment returns the final non-empty segment of a path-like token.
func lastPathSegment(token string) string {
	trimmed := strings.TrimRight(token, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 && idx+1 < len(trimmed) {
		return trimmed[idx+1:]
	}
	if trimmed == "" {
		return token
	}
	return trimmed
}

// describeEndpoint scans the three lines either side of the first line
// containing the token for a line of prose: one that does not itself
// contain the token and is longer than 20 characters.
func describeEndpoint(lines []string, token string) string {
	at := -1
	for i, line := range lines {
		if strings.Contains(line, token) {
			at = i
			break
		}
	}
	if at >= 0 {
		start := at - 3
		if start < 0 {
			start = 0
		}
		end := at + 3
		if end > len(lines)-1 {
			end = len(lines) - 1
		}
		for i := start; i <= end; i++ {
			candidate := strings.TrimSpace(lines[i])
			if strings.Contains(candidate, token) {
				continue
			}
			if len(candidate) > 20 {
				return candidate
			}
		}
	}
	return token + " endpoint"
}

// resolveMethod finds an HTTP verb immediately preceding the exact token
// anywhere in the text. Unmatched tokens default to POST.
func resolveMethod(text, token string) string {
	re, err := regexp.Compile(httpVerbPattern + regexp.QuoteMeta(token))
	if err != nil {
		return "POST"
	}
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	return "POST"
}
