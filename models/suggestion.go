package models

type AlternativeSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

type AdvancedStyleSuggestion struct {
	Verdict            string                  `json:"verdict"`
	Justification      string                  `json:"justification"`
	DetailedSuggestion string                  `json:"detailed_suggestion"`
	ItemIDs            []uint                  `json:"item_ids"`
	Confidence         float64                 `json:"confidence"`
	StyleTags          []string                `json:"style_tags"`
	Breakdown          []string                `json:"breakdown"`
	Alternatives       []AlternativeSuggestion `json:"alternatives"`
}
