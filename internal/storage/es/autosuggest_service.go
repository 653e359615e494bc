package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/sitewide-search/internal/apperr"
	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"
	"github.com/DjordjeVuckovic/sitewide-search/internal/metrics"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

const operationAutosuggest = "autosuggest"

type AutosuggestService struct {
	client *elasticsearch.TypedClient
	index  IndexOptions
}

func NewAutosuggestService(client *elasticsearch.TypedClient, index IndexOptions) *AutosuggestService {
	return &AutosuggestService{
		client: client,
		index:  index,
	}
}

// Get implements storage.AutosuggestQueryService.
// The language filter is exact; the term is a text match, not a phrase.
func (s *AutosuggestService) Get(
	ctx context.Context,
	collection domain.Collection,
	language domain.Language,
	term string,
	size int,
) (*domain.SuggestionPage, error) {
	slog.Info("Executing es autosuggest search",
		"index", s.index.AliasName,
		"collection", collection,
		"language", language,
		"term", term,
		"size", size)

	weightOrder := sortorder.Desc
	req := &search.Request{
		Query: &types.Query{
			Bool: &types.BoolQuery{
				Filter: []types.Query{
					{Term: map[string]types.TermQuery{suggestFieldLanguage: {Value: string(language)}}},
				},
				Must: []types.Query{
					{Match: map[string]types.MatchQuery{suggestFieldTerm: {Query: term}}},
				},
			},
		},
		Sort: []types.SortCombinations{
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					suggestFieldWeight: {Order: &weightOrder},
				},
			},
		},
		Source_: []string{suggestFieldTerm},
		Size:    &size,
	}

	start := time.Now()
	res, err := s.client.Search().Index(s.index.AliasName).Request(req).Do(ctx)
	if err != nil {
		status, qerr := queryError(err, s.index.AliasName, term)
		metrics.RecordQuery(operationAutosuggest, string(collection), string(language), status, time.Since(start))
		return nil, qerr
	}

	page, err := s.mapResponse(res)
	if err != nil {
		slog.Error("Invalid response when searching", "index", s.index.AliasName, "term", term, "error", err)
		metrics.RecordQuery(operationAutosuggest, string(collection), string(language), metrics.StatusInvalid, time.Since(start))
		return nil, apperr.NewInternalWrap("invalid response from index", err)
	}

	metrics.RecordQuery(operationAutosuggest, string(collection), string(language), metrics.StatusOK, time.Since(start))
	return page, nil
}

func (s *AutosuggestService) mapResponse(res *search.Response) (*domain.SuggestionPage, error) {
	if res.Hits.Total == nil {
		return nil, errMissingTotal
	}

	results := make([]domain.Suggestion, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc SuggestionDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal suggestion: %w", err)
		}
		results = append(results, domain.Suggestion{Term: doc.Term})
	}

	return domain.NewSuggestionPage(res.Hits.Total.Value, results), nil
}

// Healthy implements storage.AutosuggestQueryService.
func (s *AutosuggestService) Healthy(ctx context.Context) bool {
	return clusterHealthy(ctx, s.client, s.index.AliasName)
}

var _ storage.AutosuggestQueryService = (*AutosuggestService)(nil)
