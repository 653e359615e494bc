package factory

import (
	"fmt"

	"github.com/DjordjeVuckovic/sitewide-search/internal/querybuilder"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage/es"
)

// Services are the query services backed by one Elasticsearch client.
type Services struct {
	Search      storage.SearchQueryService
	Autosuggest storage.AutosuggestQueryService
}

func NewServices(cfg StorageConfig) (*Services, error) {
	client, err := es.NewClient(cfg.Elasticsearch)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &Services{
		Search:      es.NewSearchService(client, cfg.SearchIndexOptions, querybuilder.NewRegistry()),
		Autosuggest: es.NewAutosuggestService(client, cfg.AutosuggestIndexOptions),
	}, nil
}
