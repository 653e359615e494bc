// Package metrics provides Prometheus metrics for the sitewide search API.
package metrics

import (
	"time"

	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sitewide"

// Query outcome labels.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

var (
	// QueriesTotal counts index queries by outcome.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of index queries",
		},
		[]string{"operation", "collection", "language", "status"},
	)

	// QueryDuration measures the index round trip.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Duration of index queries in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// HealthChecksTotal counts cluster health probes by result.
	HealthChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "health_checks_total",
			Help:      "Total number of index health checks",
		},
		[]string{"index", "healthy"},
	)
)

// OtherLabel replaces label values outside a closed set.
const OtherLabel = "other"

// RecordQuery records one index query. Collections and languages that are
// not supported are folded into OtherLabel.
func RecordQuery(operation, collection, language, status string, elapsed time.Duration) {
	QueriesTotal.WithLabelValues(operation, collectionLabel(collection), languageLabel(language), status).Inc()
	QueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordHealthCheck records one health probe.
func RecordHealthCheck(index string, healthy bool) {
	label := "false"
	if healthy {
		label = "true"
	}
	HealthChecksTotal.WithLabelValues(index, label).Inc()
}

func collectionLabel(c string) string {
	if domain.SupportedCollections[domain.Collection(c)] {
		return c
	}
	return OtherLabel
}

func languageLabel(l string) string {
	if domain.SupportedLanguages[domain.Language(l)] {
		return l
	}
	return OtherLabel
}
