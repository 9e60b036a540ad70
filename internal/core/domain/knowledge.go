package domain

// KnowledgeBase is the aggregate root of the ingestion pipeline: every
// ingested document plus the three collections mined from them. Ordering
// follows discovery order and is significant for reproducibility.
//
// A KnowledgeBase is owned exclusively by the pipeline while it is being
// built and becomes effectively read-only once shared with query-serving
// collaborators. Its JSON form is the cache file, the sole persisted state
// of the whole system.
type KnowledgeBase struct {
	Documents []Document `json:"documents"`
	Endpoints []Endpoint `json:"endpoints"`
	Examples  []Example  `json:"examples"`
	Rules     []Rule     `json:"rules"`
}

// NewKnowledgeBase returns an empty knowledge base with non-nil collections,
// so that serialisation always emits the four top-level arrays.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		Documents: []Document{},
		Endpoints: []Endpoint{},
		Examples:  []Example{},
		Rules:     []Rule{},
	}
}

// Stats summarises collection sizes.
type Stats struct {
	Documents int `json:"documents"`
	Endpoints int `json:"endpoints"`
	Examples  int `json:"examples"`
	Rules     int `json:"rules"`
}

// Stats returns the size of each collection.
func (kb *KnowledgeBase) Stats() Stats {
	return Stats{
		Documents: len(kb.Documents),
		Endpoints: len(kb.Endpoints),
		Examples:  len(kb.Examples),
		Rules:     len(kb.Rules),
	}
}

// IsEmpty reports whether the knowledge base holds no documents.
func (kb *KnowledgeBase) IsEmpty() bool {
	return len(kb.Documents) == 0
}
