package domain

// Endpoint is a candidate API operation mined from a document's text.
//
// Endpoints are not deduplicated: the same literal URL matched by several
// heuristic passes, or appearing in several documents, produces several
// entries. The knowledge base is a multiset, not a set.
type Endpoint struct {
	// Name combines the document category and the last URL path segment.
	Name string `json:"name"`

	// Description is a best-effort neighbouring line of text.
	Description string `json:"description"`

	// Method is the HTTP verb (GET/POST/PUT/DELETE), defaulting to POST
	// when no verb precedes the matched URL.
	Method string `json:"method"`

	// URL is the matched path-like token.
	URL string `json:"url"`

	// Category is the category of the originating document.
	Category string `json:"category"`

	// Source is the filename of the originating document.
	Source string `json:"source"`
}
