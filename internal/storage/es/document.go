package es

import "github.com/DjordjeVuckovic/sitewide-search/internal/domain"

// Source fields requested from the sitewide index.
const (
	sourceURL         = "url"
	sourceTitle       = "title"
	sourceDescription = "metatag.description"
	sourceContentType = "metatag.dcterms.type"
)

var searchSourceFields = []string{sourceURL, sourceTitle, sourceDescription, sourceContentType}

// SiteWideDocument is the projected _source of a sitewide search hit.
// The metatag keys are stored flat, dots included.
type SiteWideDocument struct {
	Title       *string              `json:"title"`
	URL         string               `json:"url"`
	ContentType *string              `json:"metatag.dcterms.type"`
	Description *MetadataDescription `json:"metatag.description"`
}

func (d SiteWideDocument) toResult() domain.SearchResult {
	res := domain.SearchResult{
		Title:       d.Title,
		URL:         d.URL,
		ContentType: d.ContentType,
	}
	if d.Description != nil {
		desc := string(*d.Description)
		res.Description = &desc
	}
	return res
}

// SuggestionDocument is the projected _source of an autosuggest hit.
type SuggestionDocument struct {
	Term string `json:"term"`
}

// Autosuggest index fields.
const (
	suggestFieldLanguage = "language"
	suggestFieldTerm     = "term"
	suggestFieldWeight   = "weight"
)
