package storage

import (
	"context"

	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"
)

// SearchQueryService runs sitewide full-text searches.
type SearchQueryService interface {
	// Get returns one page of ranked results for term.
	// from is the offset of the first hit, size the page length.
	// siteFilters restricts results to URL prefixes where the collection
	// supports it; an empty list means no restriction.
	// An unknown collection/language pair fails with *apperr.ValidationError
	// before the index is queried; index failures are *apperr.InternalError.
	Get(ctx context.Context, collection domain.Collection, language domain.Language, term string, from, size int, siteFilters []string) (*domain.SearchResultPage, error)
	// Healthy reports whether the search index is green or yellow.
	Healthy(ctx context.Context) bool
}

// AutosuggestQueryService returns search term suggestions.
type AutosuggestQueryService interface {
	// Get returns up to size suggestions matching term, heaviest first.
	Get(ctx context.Context, collection domain.Collection, language domain.Language, term string, size int) (*domain.SuggestionPage, error)
	// Healthy reports whether the autosuggest index is green or yellow.
	Healthy(ctx context.Context) bool
}
