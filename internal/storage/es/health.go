package es

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/sitewide-search/internal/metrics"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/healthstatus"
)

// clusterHealthy queries _cluster/health/<index>. Only a well-formed green or
// yellow response counts as healthy; failures are logged, never returned.
func clusterHealthy(ctx context.Context, client *elasticsearch.TypedClient, index string) bool {
	healthy := checkClusterHealth(ctx, client, index)
	metrics.RecordHealthCheck(index, healthy)
	return healthy
}

func checkClusterHealth(ctx context.Context, client *elasticsearch.TypedClient, index string) bool {
	res, err := client.Cluster.Health().Index(index).Do(ctx)
	if err != nil {
		slog.Error("Error checking Elasticsearch health", "index", index, "error", err)
		return false
	}

	switch res.Status {
	case healthstatus.Green, healthstatus.Yellow:
		return true
	default:
		slog.Error("Elasticsearch not healthy", "index", index, "status", res.Status.String())
		return false
	}
}
