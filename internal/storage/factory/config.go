package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/sitewide-search/internal/storage/es"
	"github.com/DjordjeVuckovic/sitewide-search/pkg/stringsutil"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSearchAlias      = "cgov"
	DefaultAutosuggestAlias = "autosg"
)

type StorageConfig struct {
	Elasticsearch           es.ClientConfig `yaml:"elasticsearch"`
	SearchIndexOptions      es.IndexOptions `yaml:"searchIndexOptions"`
	AutosuggestIndexOptions es.IndexOptions `yaml:"autosuggestIndexOptions"`
}

func defaultConfig() StorageConfig {
	return StorageConfig{
		SearchIndexOptions:      es.IndexOptions{AliasName: DefaultSearchAlias},
		AutosuggestIndexOptions: es.IndexOptions{AliasName: DefaultAutosuggestAlias},
	}
}

// LoadEnv builds the storage configuration from defaults, then the YAML file
// named by CONFIG_FILE if set, then ES_* environment variables.
func LoadEnv() (*StorageConfig, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			slog.Error("Failed to load storage configuration file", "path", path, "error", err)
			return nil, err
		}
	}

	if v := os.Getenv("ES_ADDRESSES"); v != "" {
		cfg.Elasticsearch.Addresses = strings.Split(v, ",")
	}
	if v := os.Getenv("ES_USERNAME"); v != "" {
		cfg.Elasticsearch.Username = v
	}
	if v := os.Getenv("ES_PASSWORD"); v != "" {
		cfg.Elasticsearch.Password = v
	}
	if v := os.Getenv("ES_DISABLE_RETRY"); v != "" {
		disable, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ES_DISABLE_RETRY value %q: %w", v, err)
		}
		cfg.Elasticsearch.DisableRetry = disable
	}
	if v := os.Getenv("ES_SEARCH_ALIAS"); v != "" {
		cfg.SearchIndexOptions.AliasName = v
	}
	if v := os.Getenv("ES_AUTOSUGGEST_ALIAS"); v != "" {
		cfg.AutosuggestIndexOptions.AliasName = v
	}

	cfg.Elasticsearch.Addresses = stringsutil.RemoveEmptyStrings(stringsutil.TrimAll(cfg.Elasticsearch.Addresses))
	if len(cfg.Elasticsearch.Addresses) == 0 {
		slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Elasticsearch.Addresses)
		return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
	}

	return &cfg, nil
}

func loadFile(path string, cfg *StorageConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
