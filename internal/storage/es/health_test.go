package es

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DjordjeVuckovic/sitewide-search/internal/querybuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestHealthy(t *testing.T) {
	tests := []struct {
		name    string
		cluster func(t *testing.T) *fakeCluster
		want    bool
	}{
		{
			name:    "green",
			cluster: func(t *testing.T) *fakeCluster { return newFakeCluster(t, http.StatusOK, "health_green.json") },
			want:    true,
		},
		{
			name:    "yellow",
			cluster: func(t *testing.T) *fakeCluster { return newFakeCluster(t, http.StatusOK, "health_yellow.json") },
			want:    true,
		},
		{
			name:    "red",
			cluster: func(t *testing.T) *fakeCluster { return newFakeCluster(t, http.StatusOK, "health_red.json") },
			want:    false,
		},
		{
			name:    "server error",
			cluster: func(t *testing.T) *fakeCluster { return newRawFakeCluster(t, http.StatusInternalServerError, `{}`) },
			want:    false,
		},
		{
			name:    "malformed body",
			cluster: func(t *testing.T) *fakeCluster { return newRawFakeCluster(t, http.StatusOK, `{"status":`) },
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cluster := tt.cluster(t)
			client := cluster.client()

			search := NewSearchService(client, IndexOptions{AliasName: "cgov"}, querybuilder.NewRegistry())
			assert.Equal(t, tt.want, search.Healthy(context.Background()))

			suggest := NewAutosuggestService(client, IndexOptions{AliasName: "autosg"})
			assert.Equal(t, tt.want, suggest.Healthy(context.Background()))

			reqs := cluster.Requests()
			require.Len(t, reqs, 2)
			assert.Equal(t, http.MethodGet, reqs[0].Method)
			assert.Equal(t, "/_cluster/health/cgov", reqs[0].Path)
			assert.Equal(t, "/_cluster/health/autosg", reqs[1].Path)
		})
	}
}

func TestHealthy_Unreachable(t *testing.T) {
	svc := NewAutosuggestService(unreachableClient(t), IndexOptions{AliasName: "autosg"})

	assert.False(t, svc.Healthy(context.Background()))
}
