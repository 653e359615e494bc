package testing

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

const spanishAnalyzer = "spanish"

// SitewideMapping covers every field the sitewide search strategies query.
// Text fields carry a Spanish-analyzed "es" subfield; searchurl also has a
// "raw" keyword subfield for prefix filters.
func SitewideMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"url":                      types.NewKeywordProperty(),
			"title":                    types.NewTextProperty(),
			"content":                  bilingualText(nil),
			"searchtitle":              bilingualText(nil),
			"searchurl":                bilingualText(map[string]types.Property{"raw": types.NewKeywordProperty()}),
			"metatag.description":      bilingualText(nil),
			"metatag.dcterms.type":     types.NewTextProperty(),
			"metatag.content-language": types.NewKeywordProperty(),
			"type":                     types.NewKeywordProperty(),
			"host":                     types.NewKeywordProperty(),
		},
	}
}

// AutosuggestMapping is the suggestion index: exact language, analyzed
// term and a numeric weight.
func AutosuggestMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"language": types.NewKeywordProperty(),
			"term":     types.NewTextProperty(),
			"weight":   types.NewIntegerNumberProperty(),
		},
	}
}

func bilingualText(extra map[string]types.Property) *types.TextProperty {
	analyzer := spanishAnalyzer
	es := types.NewTextProperty()
	es.Analyzer = &analyzer

	prop := types.NewTextProperty()
	prop.Fields = map[string]types.Property{"es": es}
	for name, p := range extra {
		prop.Fields[name] = p
	}
	return prop
}

// SeedIndex creates index with mapping and bulk loads the NDJSON fixture at
// path. Documents are searchable when it returns.
func SeedIndex(ctx context.Context, tb testing.TB, client *elasticsearch.TypedClient, index string, mapping types.TypeMapping, path string) {
	tb.Helper()

	createRes, err := client.Indices.Create(index).Mappings(&mapping).Do(ctx)
	if err != nil {
		tb.Fatalf("failed to create index %s: %v", index, err)
	}
	if !createRes.Acknowledged {
		tb.Fatalf("index %s creation was not acknowledged", index)
	}

	f, err := os.Open(path)
	if err != nil {
		tb.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	docs, err := ReadNDJSON(f)
	if err != nil {
		tb.Fatalf("failed to read fixture %s: %v", path, err)
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         index,
		Client:        client,
		NumWorkers:    2,
		FlushInterval: time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		tb.Fatalf("failed to create bulk indexer: %v", err)
	}

	var failed atomic.Int64
	for _, doc := range docs {
		err := bi.Add(ctx, esutil.BulkIndexerItem{
			Action: "index",
			Body:   bytes.NewReader(doc),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					tb.Logf("bulk index error: %v", err)
				} else {
					tb.Logf("bulk index error: %s: %s", res.Error.Type, res.Error.Reason)
				}
			},
		})
		if err != nil {
			tb.Fatalf("failed to add document to bulk indexer: %v", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		tb.Fatalf("failed to close bulk indexer: %v", err)
	}
	if n := failed.Load(); n > 0 {
		tb.Fatalf("failed to index %d out of %d documents into %s", n, len(docs), index)
	}
}

// MustJSON is a test helper for comparing mappings and request bodies.
func MustJSON(tb testing.TB, v any) string {
	tb.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		tb.Fatalf("failed to marshal: %v", err)
	}
	return string(data)
}
