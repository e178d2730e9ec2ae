package models

// Recommendation is one free-text AI book suggestion as returned by the
// recommendation endpoint. It is ephemeral and never persisted.
type Recommendation struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// EnrichedRecommendation is a suggestion annotated with the catalog entry it
// was matched to, if any. It is recomputed on every query.
type EnrichedRecommendation struct {
	Recommendation
	MatchedBook *Book `json:"matchedBook,omitempty"`
	InDatabase  bool  `json:"inDatabase"`
}
