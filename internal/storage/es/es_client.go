package es

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
)

type ClientConfig struct {
	Addresses    []string `yaml:"addresses"`
	Username     string   `yaml:"username"`
	Password     string   `yaml:"password"`
	DisableRetry bool     `yaml:"disableRetry"`
	// Transport overrides the HTTP transport; tests point it at a fake cluster.
	Transport http.RoundTripper `yaml:"-"`
}

// IndexOptions names the alias a service queries.
type IndexOptions struct {
	AliasName string `yaml:"aliasName"`
}

func NewClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses:    config.Addresses,
		DisableRetry: config.DisableRetry,
		Transport:    config.Transport,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewTypedClient(cfg)

	return client, err
}
