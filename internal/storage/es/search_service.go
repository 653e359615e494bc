package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/sitewide-search/internal/apperr"
	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"
	"github.com/DjordjeVuckovic/sitewide-search/internal/metrics"
	"github.com/DjordjeVuckovic/sitewide-search/internal/querybuilder"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

const operationSearch = "search"

// InvalidCombinationMessage is returned to callers asking for an
// unregistered collection/language pair.
const InvalidCombinationMessage = "Invalid collection/language combination."

var errMissingTotal = errors.New("response has no hits.total")

type SearchService struct {
	client   *elasticsearch.TypedClient
	index    IndexOptions
	registry *querybuilder.Registry
}

func NewSearchService(client *elasticsearch.TypedClient, index IndexOptions, registry *querybuilder.Registry) *SearchService {
	return &SearchService{
		client:   client,
		index:    index,
		registry: registry,
	}
}

// Get implements storage.SearchQueryService.
// Hits are sorted by score and then URL so equally relevant documents keep
// a stable order, and the total is always exact.
func (s *SearchService) Get(
	ctx context.Context,
	collection domain.Collection,
	language domain.Language,
	term string,
	from, size int,
	siteFilters []string,
) (*domain.SearchResultPage, error) {
	builder, err := s.registry.Lookup(collection, language)
	if err != nil {
		return nil, apperr.NewValidationWrap(InvalidCombinationMessage, err)
	}

	slog.Info("Executing es sitewide search",
		"index", s.index.AliasName,
		"strategy", builder.Strategy().String(),
		"term", term,
		"from", from,
		"size", size,
		"sites", siteFilters)

	scoreOrder, urlOrder := sortorder.Desc, sortorder.Asc
	req := &search.Request{
		Query: builder.Query(term, siteFilters),
		From:  &from,
		Size:  &size,
		Sort: []types.SortCombinations{
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"_score": {Order: &scoreOrder},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					sourceURL: {Order: &urlOrder},
				},
			},
		},
		Source_:        searchSourceFields,
		TrackTotalHits: true,
	}

	start := time.Now()
	res, err := s.client.Search().Index(s.index.AliasName).Request(req).Do(ctx)
	if err != nil {
		status, qerr := queryError(err, s.index.AliasName, term)
		metrics.RecordQuery(operationSearch, string(collection), string(language), status, time.Since(start))
		return nil, qerr
	}

	page, err := s.mapResponse(res)
	if err != nil {
		slog.Error("Invalid response when searching", "index", s.index.AliasName, "term", term, "error", err)
		metrics.RecordQuery(operationSearch, string(collection), string(language), metrics.StatusInvalid, time.Since(start))
		return nil, apperr.NewInternalWrap("invalid response from index", err)
	}

	metrics.RecordQuery(operationSearch, string(collection), string(language), metrics.StatusOK, time.Since(start))
	slog.Info("Es sitewide search results fetched",
		"total_matches", page.Total,
		"returned_count", len(page.Results))

	return page, nil
}

func (s *SearchService) mapResponse(res *search.Response) (*domain.SearchResultPage, error) {
	if res.Hits.Total == nil {
		return nil, errMissingTotal
	}

	results := make([]domain.SearchResult, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc SiteWideDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		results = append(results, doc.toResult())
	}

	return domain.NewSearchResultPage(res.Hits.Total.Value, results), nil
}

// Healthy implements storage.SearchQueryService.
func (s *SearchService) Healthy(ctx context.Context) bool {
	return clusterHealthy(ctx, s.client, s.index.AliasName)
}

// Compile-time interface assertions
var _ storage.SearchQueryService = (*SearchService)(nil)
