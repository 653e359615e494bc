package es

import (
	"errors"
	"log/slog"

	"github.com/DjordjeVuckovic/sitewide-search/internal/apperr"
	"github.com/DjordjeVuckovic/sitewide-search/internal/metrics"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// queryError logs err with its diagnostic payload and converts it into an
// *apperr.InternalError, returning the metrics status label alongside it.
func queryError(err error, index string, term string) (string, error) {
	var esErr *types.ElasticsearchError
	if errors.As(err, &esErr) {
		slog.Error("Invalid response when searching",
			"index", index,
			"term", term,
			"status", esErr.Status,
			"diagnostic", esErr.Error())
		return metrics.StatusInvalid, apperr.NewInternalWrap("invalid response from index", err)
	}

	slog.Error("Error searching index", "index", index, "term", term, "error", err)
	return metrics.StatusError, apperr.NewInternalWrap("failed to query index", err)
}
