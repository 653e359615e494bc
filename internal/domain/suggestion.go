package domain

type Suggestion struct {
	Term string `json:"term"`
}

// SuggestionPage holds suggestions ordered by descending weight and the
// number of matching terms available.
type SuggestionPage struct {
	Total   int64        `json:"total"`
	Results []Suggestion `json:"results"`
}

func NewSuggestionPage(total int64, results []Suggestion) *SuggestionPage {
	if results == nil {
		results = make([]Suggestion, 0)
	}
	return &SuggestionPage{
		Total:   total,
		Results: results,
	}
}
