package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/sitewide-search/internal/storage/es"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "ES_ADDRESSES", "ES_USERNAME", "ES_PASSWORD",
		"ES_DISABLE_RETRY", "ES_SEARCH_ALIAS", "ES_AUTOSUGGEST_ALIAS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ES_ADDRESSES", "http://localhost:9200")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, &StorageConfig{
		Elasticsearch:           es.ClientConfig{Addresses: []string{"http://localhost:9200"}},
		SearchIndexOptions:      es.IndexOptions{AliasName: "cgov"},
		AutosuggestIndexOptions: es.IndexOptions{AliasName: "autosg"},
	}, cfg)
}

func TestLoadEnv_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ES_ADDRESSES", "http://es-a:9200, ,http://es-b:9200")
	t.Setenv("ES_USERNAME", "elastic")
	t.Setenv("ES_PASSWORD", "changeme")
	t.Setenv("ES_DISABLE_RETRY", "true")
	t.Setenv("ES_SEARCH_ALIAS", "cgov_v2")
	t.Setenv("ES_AUTOSUGGEST_ALIAS", "autosg_v2")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, []string{"http://es-a:9200", "http://es-b:9200"}, cfg.Elasticsearch.Addresses)
	assert.Equal(t, "elastic", cfg.Elasticsearch.Username)
	assert.Equal(t, "changeme", cfg.Elasticsearch.Password)
	assert.True(t, cfg.Elasticsearch.DisableRetry)
	assert.Equal(t, "cgov_v2", cfg.SearchIndexOptions.AliasName)
	assert.Equal(t, "autosg_v2", cfg.AutosuggestIndexOptions.AliasName)
}

func TestLoadEnv_File(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join("testdata", "storage.yaml"))

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, &StorageConfig{
		Elasticsearch: es.ClientConfig{
			Addresses:    []string{"http://es-1:9200", "http://es-2:9200"},
			Username:     "sitewide",
			Password:     "from-file",
			DisableRetry: true,
		},
		SearchIndexOptions:      es.IndexOptions{AliasName: "cgov_file"},
		AutosuggestIndexOptions: es.IndexOptions{AliasName: "autosg_file"},
	}, cfg)
}

func TestLoadEnv_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join("testdata", "storage.yaml"))
	t.Setenv("ES_PASSWORD", "from-env")
	t.Setenv("ES_SEARCH_ALIAS", "cgov_env")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Elasticsearch.Password)
	assert.Equal(t, "cgov_env", cfg.SearchIndexOptions.AliasName)
	assert.Equal(t, "autosg_file", cfg.AutosuggestIndexOptions.AliasName)
}

func TestLoadEnv_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elasticsearch:\n  addresses: [\"http://es:9200\"]\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "cgov", cfg.SearchIndexOptions.AliasName)
	assert.Equal(t, "autosg", cfg.AutosuggestIndexOptions.AliasName)
}

func TestLoadEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "no addresses", env: map[string]string{}},
		{name: "blank addresses", env: map[string]string{"ES_ADDRESSES": " , "}},
		{name: "bad retry flag", env: map[string]string{"ES_ADDRESSES": "http://es:9200", "ES_DISABLE_RETRY": "maybe"}},
		{name: "missing file", env: map[string]string{"CONFIG_FILE": "testdata/missing.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadEnv()

			assert.Error(t, err)
		})
	}
}

func TestNewServices(t *testing.T) {
	svcs, err := NewServices(StorageConfig{
		Elasticsearch:           es.ClientConfig{Addresses: []string{"http://localhost:9200"}},
		SearchIndexOptions:      es.IndexOptions{AliasName: "cgov"},
		AutosuggestIndexOptions: es.IndexOptions{AliasName: "autosg"},
	})

	require.NoError(t, err)
	assert.NotNil(t, svcs.Search)
	assert.NotNil(t, svcs.Autosuggest)
}
