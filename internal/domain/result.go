package domain

// SearchResult is a single sitewide search hit.
// Only URL is guaranteed; the indexed documents are heterogeneous so every
// other field may be absent and is serialized as null.
type SearchResult struct {
	Title       *string `json:"title"`
	URL         string  `json:"url"`
	ContentType *string `json:"contentType"`
	Description *string `json:"description"`
}

// SearchResultPage is one page of ranked hits plus the engine's total match count.
type SearchResultPage struct {
	Total   int64          `json:"total"`
	Results []SearchResult `json:"results"`
}

func NewSearchResultPage(total int64, results []SearchResult) *SearchResultPage {
	if results == nil {
		results = make([]SearchResult, 0)
	}
	return &SearchResultPage{
		Total:   total,
		Results: results,
	}
}
