package domain

// RuleCategory is the constant category assigned to every mined rule.
const RuleCategory = "Validation"

// Rule is a business/validation rule mined from documents categorised as
// "Validation Rules".
//
// Name and Description carry the identical matched text fragment. The
// duplication comes from the extraction heuristic and is part of the
// serialised format.
type Rule struct {
	// Name is the trimmed text captured after a rule cue word.
	Name string `json:"name"`

	// Description duplicates Name.
	Description string `json:"description"`

	// Category is always "Validation".
	Category string `json:"category"`

	// Source is the filename of the originating document.
	Source string `json:"source"`
}
